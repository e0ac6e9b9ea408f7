package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/daily-look/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/scenarios/daily", handler.DailyScenarios)
		api.GET("/hairstyles", handler.Hairstyles)

		looks := api.Group("/looks")
		looks.Use(
			rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
			bodyLimitMiddleware(cfg.HTTP.MaxBodyBytes),
		)
		looks.POST("/daily", handler.DailyLooks)
		looks.POST("/hairstyles", handler.HairstyleLooks)

		deliveries := api.Group("/deliveries")
		deliveries.Use(adminTokenMiddleware(cfg.HTTP.AdminToken))
		deliveries.POST("/run", handler.RunDeliveries)
		deliveries.POST("/subscribers/:id", handler.DeliverSubscriber)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
