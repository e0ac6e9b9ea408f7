package subscriberrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/domain/imagegen"
	"github.com/yanqian/daily-look/internal/domain/outfit"
	"github.com/yanqian/daily-look/internal/domain/weather"
)

// PostgresRepository persists subscribers and deliveries in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const subscriberColumns = `id, email, gender, locale, latitude, longitude, photo_key, active`

// ListActive returns every active subscriber ordered by id.
func (r *PostgresRepository) ListActive(ctx context.Context) ([]dailylook.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+subscriberColumns+`
		FROM subscribers
		WHERE active
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var subs []dailylook.Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// Get fetches a subscriber by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (dailylook.Subscriber, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+subscriberColumns+`
		FROM subscribers
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return dailylook.Subscriber{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return dailylook.Subscriber{}, false, rows.Err()
	}
	sub, err := scanSubscriber(rows)
	if err != nil {
		return dailylook.Subscriber{}, false, err
	}
	return sub, true, rows.Err()
}

// Find returns the delivery recorded for subscriberID on day.
func (r *PostgresRepository) Find(ctx context.Context, subscriberID string, day int64) (dailylook.Delivery, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT subscriber_id, day_index, run_id, locale, weather, looks, created_at
		FROM daily_deliveries
		WHERE subscriber_id = $1 AND day_index = $2
		LIMIT 1
	`, subscriberID, day)
	if err != nil {
		return dailylook.Delivery{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return dailylook.Delivery{}, false, rows.Err()
	}
	delivery, err := scanDelivery(rows)
	if err != nil {
		return dailylook.Delivery{}, false, err
	}
	return delivery, true, rows.Err()
}

// Record inserts the delivery unless one exists for the same subscriber and day.
func (r *PostgresRepository) Record(ctx context.Context, d dailylook.Delivery) (dailylook.Delivery, bool, error) {
	weatherJSON, err := json.Marshal(d.Weather)
	if err != nil {
		return dailylook.Delivery{}, false, fmt.Errorf("encode weather: %w", err)
	}
	looks := d.Looks
	if looks == nil {
		looks = []imagegen.Look{}
	}
	looksJSON, err := json.Marshal(looks)
	if err != nil {
		return dailylook.Delivery{}, false, fmt.Errorf("encode looks: %w", err)
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO daily_deliveries (subscriber_id, day_index, run_id, locale, weather, looks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (subscriber_id, day_index) DO NOTHING
		RETURNING subscriber_id, day_index, run_id, locale, weather, looks, created_at
	`, d.SubscriberID, d.Day, d.RunID, string(d.Locale), weatherJSON, looksJSON, d.CreatedAt)
	stored, err := scanDelivery(row)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, ok, findErr := r.Find(ctx, d.SubscriberID, d.Day)
		if findErr != nil {
			return dailylook.Delivery{}, false, findErr
		}
		if !ok {
			return dailylook.Delivery{}, false, fmt.Errorf("delivery for %s on day %d vanished after conflict", d.SubscriberID, d.Day)
		}
		return existing, false, nil
	}
	if err != nil {
		return dailylook.Delivery{}, false, err
	}
	return stored, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscriber(row rowScanner) (dailylook.Subscriber, error) {
	var (
		sub            dailylook.Subscriber
		gender, locale string
	)
	if err := row.Scan(&sub.ID, &sub.Email, &gender, &locale, &sub.Latitude, &sub.Longitude, &sub.PhotoKey, &sub.Active); err != nil {
		return dailylook.Subscriber{}, err
	}
	sub.Gender = outfit.ParseGender(gender)
	sub.Locale = outfit.ParseLocale(locale, outfit.DefaultLocale)
	return sub, nil
}

func scanDelivery(row rowScanner) (dailylook.Delivery, error) {
	var (
		d                      dailylook.Delivery
		locale                 string
		weatherJSON, looksJSON []byte
		created                time.Time
	)
	if err := row.Scan(&d.SubscriberID, &d.Day, &d.RunID, &locale, &weatherJSON, &looksJSON, &created); err != nil {
		return dailylook.Delivery{}, err
	}
	d.Locale = outfit.Locale(locale)
	d.CreatedAt = created.UTC()
	var snap weather.Snapshot
	if len(weatherJSON) > 0 {
		if err := json.Unmarshal(weatherJSON, &snap); err != nil {
			return dailylook.Delivery{}, fmt.Errorf("decode weather: %w", err)
		}
	}
	d.Weather = snap
	if len(looksJSON) > 0 {
		if err := json.Unmarshal(looksJSON, &d.Looks); err != nil {
			return dailylook.Delivery{}, fmt.Errorf("decode looks: %w", err)
		}
	}
	return d, nil
}

var (
	_ dailylook.SubscriberRepository = (*PostgresRepository)(nil)
	_ dailylook.DeliveryRepository   = (*PostgresRepository)(nil)
)
