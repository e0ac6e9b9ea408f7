package subscriberrepo

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/domain/imagegen"
)

// MemoryRepository provides in-memory subscribers and deliveries for tests/dev.
type MemoryRepository struct {
	mu          sync.RWMutex
	subscribers map[string]dailylook.Subscriber
	deliveries  map[string]dailylook.Delivery
}

// NewMemoryRepository constructs a repository seeded with subs.
func NewMemoryRepository(subs ...dailylook.Subscriber) *MemoryRepository {
	r := &MemoryRepository{
		subscribers: make(map[string]dailylook.Subscriber, len(subs)),
		deliveries:  make(map[string]dailylook.Delivery),
	}
	for _, sub := range subs {
		r.subscribers[sub.ID] = sub
	}
	return r
}

// Upsert stores or replaces a subscriber.
func (r *MemoryRepository) Upsert(sub dailylook.Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers[sub.ID] = sub
}

// ListActive returns active subscribers ordered by id.
func (r *MemoryRepository) ListActive(_ context.Context) ([]dailylook.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subs := make([]dailylook.Subscriber, 0, len(r.subscribers))
	for _, sub := range r.subscribers {
		if sub.Active {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].ID < subs[j].ID })
	return subs, nil
}

// Get fetches a subscriber by id.
func (r *MemoryRepository) Get(_ context.Context, id string) (dailylook.Subscriber, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subscribers[id]
	return sub, ok, nil
}

// Find returns the delivery for subscriberID on day.
func (r *MemoryRepository) Find(_ context.Context, subscriberID string, day int64) (dailylook.Delivery, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deliveries[deliveryKey(subscriberID, day)]
	if !ok {
		return dailylook.Delivery{}, false, nil
	}
	return cloneDelivery(d), true, nil
}

// Record stores d unless the subscriber already has a delivery that day.
func (r *MemoryRepository) Record(_ context.Context, d dailylook.Delivery) (dailylook.Delivery, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := deliveryKey(d.SubscriberID, d.Day)
	if existing, ok := r.deliveries[key]; ok {
		return cloneDelivery(existing), false, nil
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	d = cloneDelivery(d)
	r.deliveries[key] = d
	return cloneDelivery(d), true, nil
}

var (
	_ dailylook.SubscriberRepository = (*MemoryRepository)(nil)
	_ dailylook.DeliveryRepository   = (*MemoryRepository)(nil)
)

func deliveryKey(subscriberID string, day int64) string {
	return subscriberID + ":" + strconv.FormatInt(day, 10)
}

func cloneDelivery(d dailylook.Delivery) dailylook.Delivery {
	d.Looks = append([]imagegen.Look(nil), d.Looks...)
	return d
}
