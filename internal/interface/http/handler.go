package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/domain/outfit"
	"github.com/yanqian/daily-look/internal/infra/config"
	apperrors "github.com/yanqian/daily-look/pkg/errors"
)

// DailyLookService is the slice of dailylook.Service the transport needs.
type DailyLookService interface {
	Scenarios(ctx context.Context, req dailylook.ScenarioRequest) (dailylook.ScenarioResponse, error)
	Preview(ctx context.Context, req dailylook.PreviewRequest) (dailylook.LooksResponse, error)
	TryHairstyles(ctx context.Context, req dailylook.HairstyleRequest) (dailylook.LooksResponse, error)
	RunDaily(ctx context.Context) (dailylook.RunSummary, error)
	DeliverSubscriber(ctx context.Context, subscriberID string) (dailylook.Delivery, error)
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	svc           DailyLookService
	defaultLocale outfit.Locale
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, svc DailyLookService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:           svc,
		defaultLocale: outfit.ParseLocale(cfg.Delivery.DefaultLocale, outfit.DefaultLocale),
		logger:        logger.With("component", "http.handler"),
	}
}

type previewRequest struct {
	Photo     string   `json:"photo" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Gender    string   `json:"gender"`
	Locale    string   `json:"locale"`
}

type hairstyleRequest struct {
	Photo  string   `json:"photo" binding:"required"`
	Gender string   `json:"gender"`
	Locale string   `json:"locale"`
	Styles []string `json:"styles"`
}

type hairstyleView struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// DailyScenarios returns today's weather and the two scenario prompts.
func (h *Handler) DailyScenarios(c *gin.Context) {
	lat, lon, err := parseCoordinates(c.Query("lat"), c.Query("lon"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.svc.Scenarios(c.Request.Context(), dailylook.ScenarioRequest{
		Latitude:  lat,
		Longitude: lon,
		Gender:    c.Query("gender"),
		Locale:    c.Query("locale"),
	})
	if err != nil {
		abortWithError(c, fromAppError(err, "scenarios_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DailyLooks generates today's looks for an uploaded photo.
func (h *Handler) DailyLooks(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.svc.Preview(c.Request.Context(), dailylook.PreviewRequest{
		Photo:     req.Photo,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Gender:    req.Gender,
		Locale:    req.Locale,
	})
	if err != nil {
		abortWithError(c, fromAppError(err, "look_generation_failed"))
		return
	}
	h.respondLooks(c, resp)
}

// Hairstyles lists the hairstyle catalog for a gender.
func (h *Handler) Hairstyles(c *gin.Context) {
	gender := outfit.ParseGender(c.Query("gender"))
	locale := outfit.ParseLocale(c.Query("locale"), h.defaultLocale)
	catalog := outfit.Hairstyles(gender)
	items := make([]hairstyleView, 0, len(catalog))
	for _, hs := range catalog {
		label, ok := hs.Labels[locale]
		if !ok {
			label = hs.Labels[h.defaultLocale]
		}
		items = append(items, hairstyleView{ID: hs.ID, Label: label, Description: hs.Description})
	}
	c.JSON(http.StatusOK, gin.H{"gender": gender, "hairstyles": items})
}

// HairstyleLooks renders the requested hairstyles on an uploaded photo.
func (h *Handler) HairstyleLooks(c *gin.Context) {
	var req hairstyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.svc.TryHairstyles(c.Request.Context(), dailylook.HairstyleRequest{
		Photo:    req.Photo,
		Gender:   req.Gender,
		Locale:   req.Locale,
		StyleIDs: req.Styles,
	})
	if err != nil {
		abortWithError(c, fromAppError(err, "look_generation_failed"))
		return
	}
	h.respondLooks(c, resp)
}

// RunDeliveries triggers the daily run for every active subscriber.
func (h *Handler) RunDeliveries(c *gin.Context) {
	summary, err := h.svc.RunDaily(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(err, "delivery_failed"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DeliverSubscriber produces today's delivery for one subscriber.
func (h *Handler) DeliverSubscriber(c *gin.Context) {
	delivery, err := h.svc.DeliverSubscriber(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromAppError(err, "delivery_failed"))
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondLooks(c *gin.Context, resp dailylook.LooksResponse) {
	if resp.Requested > 0 && len(resp.Looks) == 0 {
		abortWithError(c, NewHTTPError(http.StatusBadGateway, apperrors.CodeGenerationFailed, "no look could be generated, please try again later", nil))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseCoordinates(rawLat, rawLon string) (*float64, *float64, error) {
	rawLat, rawLon = strings.TrimSpace(rawLat), strings.TrimSpace(rawLon)
	if rawLat == "" || rawLon == "" {
		return nil, nil, nil
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.CodeInvalidInput, "lat must be a number", err)
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.CodeInvalidInput, "lon must be a number", err)
	}
	return &lat, &lon, nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
