package dailylook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-look/internal/domain/imagegen"
	"github.com/yanqian/daily-look/internal/domain/outfit"
	"github.com/yanqian/daily-look/internal/domain/weather"
	apperrors "github.com/yanqian/daily-look/pkg/errors"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n0000IHDR")
	fixedNow  = time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
)

func TestGenerateForSubscriberPublishesLooks(t *testing.T) {
	svc, deps := newServiceUnderTest()
	sub := Subscriber{ID: "sub-1", Gender: outfit.GenderFemale, Locale: outfit.LocaleEN, Latitude: 37.56, Longitude: 126.97, PhotoKey: "photos/sub-1.png", Active: true}
	deps.storage.blobs[sub.PhotoKey] = pngHeader

	delivery, created, err := svc.GenerateForSubscriber(context.Background(), sub, fixedNow, "run-1")
	require.NoError(t, err)
	require.True(t, created)

	day := outfit.DayIndex(fixedNow)
	require.Equal(t, day, delivery.Day)
	require.Equal(t, "run-1", delivery.RunID)
	require.Equal(t, outfit.LocaleEN, delivery.Locale)
	require.Len(t, delivery.Looks, 2)
	require.Equal(t, fmt.Sprintf("https://cdn.test/looks/sub-1/%d/dressy.png", day), delivery.Looks[0].URL)
	require.Equal(t, "Today's Dressy Look", delivery.Looks[0].Label)
	require.Equal(t, fmt.Sprintf("https://cdn.test/looks/sub-1/%d/casual.png", day), delivery.Looks[1].URL)

	call := deps.generator.calls[0]
	require.Equal(t, imagegen.EditClothing, call.kind)
	require.Equal(t, outfit.GenderFemale, call.gender)
	require.Equal(t, imagegen.EncodeDataURI("image/png", pngHeader), call.photo)
	require.Equal(t, outfit.ScenariosForDay(day, deps.weather.snap, outfit.GenderFemale)[0].Prompt, call.scenarios[0].Prompt)
	require.Equal(t, weather.Coordinates{Latitude: 37.56, Longitude: 126.97}, deps.weather.coords)

	stored, ok, err := deps.deliveries.Find(context.Background(), "sub-1", day)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, stored.Looks, 2)
}

func TestGenerateForSubscriberReturnsExistingDelivery(t *testing.T) {
	svc, deps := newServiceUnderTest()
	day := outfit.DayIndex(fixedNow)
	_, _, err := deps.deliveries.Record(context.Background(), Delivery{SubscriberID: "sub-1", Day: day, RunID: "earlier"})
	require.NoError(t, err)

	delivery, created, err := svc.GenerateForSubscriber(context.Background(), Subscriber{ID: "sub-1", PhotoKey: "missing"}, fixedNow, "run-2")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "earlier", delivery.RunID)
	require.Empty(t, deps.generator.calls)
}

func TestGenerateForSubscriberPhotoUnavailable(t *testing.T) {
	svc, deps := newServiceUnderTest()

	_, _, err := svc.GenerateForSubscriber(context.Background(), Subscriber{ID: "sub-1", PhotoKey: "photos/none.png"}, fixedNow, "run-1")
	require.True(t, apperrors.IsCode(err, apperrors.CodePhotoUnavailable))

	deps.storage.blobs["photos/text.png"] = []byte("just some text")
	_, _, err = svc.GenerateForSubscriber(context.Background(), Subscriber{ID: "sub-1", PhotoKey: "photos/text.png"}, fixedNow, "run-1")
	require.True(t, apperrors.IsCode(err, apperrors.CodePhotoUnavailable))

	require.Empty(t, deps.generator.calls)
}

func TestGenerateForSubscriberSkipsFailedUploads(t *testing.T) {
	svc, deps := newServiceUnderTest()
	deps.storage.blobs["photos/sub-1.png"] = pngHeader
	deps.storage.failPut = func(key string) bool { return bytes.Contains([]byte(key), []byte("casual")) }

	delivery, _, err := svc.GenerateForSubscriber(context.Background(), Subscriber{ID: "sub-1", PhotoKey: "photos/sub-1.png"}, fixedNow, "run-1")
	require.NoError(t, err)
	require.Len(t, delivery.Looks, 1)
	require.Equal(t, "dressy", delivery.Looks[0].ID)
}

func TestRunDailyCountsOutcomes(t *testing.T) {
	svc, deps := newServiceUnderTest()
	day := outfit.DayIndex(fixedNow)
	deps.subscribers.subs = []Subscriber{
		{ID: "fresh", PhotoKey: "photos/fresh.png", Active: true},
		{ID: "served", PhotoKey: "photos/served.png", Active: true},
		{ID: "broken", PhotoKey: "photos/broken.png", Active: true},
	}
	deps.storage.blobs["photos/fresh.png"] = pngHeader
	deps.storage.blobs["photos/served.png"] = pngHeader
	_, _, err := deps.deliveries.Record(context.Background(), Delivery{SubscriberID: "served", Day: day})
	require.NoError(t, err)

	summary, err := svc.RunDaily(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, summary.RunID)
	require.Equal(t, day, summary.Day)
	require.Equal(t, 3, summary.Subscribers)
	require.Equal(t, 1, summary.Delivered)
	require.Equal(t, 1, summary.Skipped)
	require.Equal(t, 1, summary.Failed)

	stored, ok, err := deps.deliveries.Find(context.Background(), "fresh", day)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, summary.RunID, stored.RunID)
}

func TestGenerateForSubscriberKeepsLooksFinishedBeforeDeadline(t *testing.T) {
	svc, deps := newServiceUnderTest()
	deps.storage.blobs["photos/sub-1.png"] = pngHeader
	deps.storage.honorCtx = true
	svc.looks = &interruptedGenerator{finished: 1}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	delivery, created, err := svc.GenerateForSubscriber(ctx, Subscriber{ID: "sub-1", PhotoKey: "photos/sub-1.png"}, fixedNow, "run-1")
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, delivery.Looks, 1)

	day := outfit.DayIndex(fixedNow)
	require.Equal(t, fmt.Sprintf("https://cdn.test/looks/sub-1/%d/dressy.png", day), delivery.Looks[0].URL)
	require.Equal(t, []string{fmt.Sprintf("looks/sub-1/%d/dressy.png", day)}, deps.storage.puts)

	stored, ok, err := deps.deliveries.Find(context.Background(), "sub-1", day)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, stored.Looks, 1)
}

func TestGenerateForSubscriberInterruptedWithoutLooksRecordsNothing(t *testing.T) {
	svc, deps := newServiceUnderTest()
	deps.storage.blobs["photos/sub-1.png"] = pngHeader
	deps.storage.honorCtx = true
	svc.looks = &interruptedGenerator{}
	sub := Subscriber{ID: "sub-1", PhotoKey: "photos/sub-1.png"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, created, err := svc.GenerateForSubscriber(ctx, sub, fixedNow, "run-1")
	require.True(t, apperrors.IsCode(err, apperrors.CodeGenerationFailed))
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, created)

	day := outfit.DayIndex(fixedNow)
	_, ok, err := deps.deliveries.Find(context.Background(), "sub-1", day)
	require.NoError(t, err)
	require.False(t, ok)

	svc.looks = deps.generator
	delivery, created, err := svc.GenerateForSubscriber(context.Background(), sub, fixedNow, "run-2")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "run-2", delivery.RunID)
	require.Len(t, delivery.Looks, 2)
}

func TestRunDailyCancelledMidRunCountsFailures(t *testing.T) {
	svc, deps := newServiceUnderTest()
	svc.cfg.Workers = 1
	deps.subscribers.subs = []Subscriber{
		{ID: "first", PhotoKey: "photos/first.png", Active: true},
		{ID: "second", PhotoKey: "photos/second.png", Active: true},
		{ID: "third", PhotoKey: "photos/third.png", Active: true},
	}
	for _, sub := range deps.subscribers.subs {
		deps.storage.blobs[sub.PhotoKey] = pngHeader
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gen := &interruptedGenerator{onCall: cancel}
	svc.looks = gen

	summary, err := svc.RunDaily(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, summary.Subscribers)
	require.Equal(t, 0, summary.Delivered)
	require.Equal(t, 3, summary.Failed)
	require.Equal(t, 1, gen.callCount())
	require.Empty(t, deps.deliveries.items)
}

func TestRunDailyListFailure(t *testing.T) {
	svc, deps := newServiceUnderTest()
	deps.subscribers.err = errors.New("db down")

	_, err := svc.RunDaily(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
}

func TestPreview(t *testing.T) {
	svc, deps := newServiceUnderTest()

	_, err := svc.Preview(context.Background(), PreviewRequest{Photo: "not a photo"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Empty(t, deps.generator.calls)

	photo := imagegen.EncodeDataURI("image/png", pngHeader)
	resp, err := svc.Preview(context.Background(), PreviewRequest{Photo: photo, Latitude: ptr(1.3), Longitude: ptr(103.8), Gender: "other", Locale: "ja-JP"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.RequestID)
	require.Equal(t, 2, resp.Requested)
	require.Len(t, resp.Looks, 2)
	require.Equal(t, "今日のきれいめコーデ", resp.Looks[0].Label)
	require.Equal(t, outfit.GenderMale, deps.generator.calls[0].gender)
	require.Equal(t, photo, deps.generator.calls[0].photo)
	require.Equal(t, weather.Coordinates{Latitude: 1.3, Longitude: 103.8}, deps.weather.coords)
	require.Empty(t, deps.storage.puts)
}

func TestTryHairstyles(t *testing.T) {
	svc, deps := newServiceUnderTest()
	photo := imagegen.EncodeDataURI("image/png", pngHeader)

	_, err := svc.TryHairstyles(context.Background(), HairstyleRequest{Photo: photo, Gender: "female", StyleIDs: []string{"mohawk"}})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	resp, err := svc.TryHairstyles(context.Background(), HairstyleRequest{Photo: photo, Gender: "female"})
	require.NoError(t, err)
	require.Equal(t, 9, resp.Requested)
	require.Equal(t, imagegen.EditHairstyle, deps.generator.calls[0].kind)
	require.Len(t, deps.generator.calls[0].scenarios, 9)
}

func TestDeliverSubscriberNotFound(t *testing.T) {
	svc, deps := newServiceUnderTest()
	deps.subscribers.subs = []Subscriber{{ID: "paused", Active: false}}

	_, err := svc.DeliverSubscriber(context.Background(), "paused")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	_, err = svc.DeliverSubscriber(context.Background(), "ghost")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestScenariosWithoutLocationUseDefaultWeather(t *testing.T) {
	svc, deps := newServiceUnderTest()
	deps.weather.snap = weather.Snapshot{Temp: -3, Condition: weather.ConditionSnow}

	resp, err := svc.Scenarios(context.Background(), ScenarioRequest{Gender: "male"})
	require.NoError(t, err)
	require.Equal(t, weather.Default(), resp.Weather)
	require.Equal(t, "오늘의 포멀 룩", resp.Scenarios[0].Label)
}

func TestScenarios(t *testing.T) {
	svc, deps := newServiceUnderTest()
	deps.weather.snap = weather.Snapshot{Temp: -3, Condition: weather.ConditionSnow, Description: "light snow"}

	resp, err := svc.Scenarios(context.Background(), ScenarioRequest{Latitude: ptr(59.9), Longitude: ptr(10.7), Gender: "female", Locale: "es"})
	require.NoError(t, err)
	require.Equal(t, weather.ConditionSnow, resp.Weather.Condition)
	require.Equal(t, outfit.DayIndex(fixedNow), resp.Day)
	require.Len(t, resp.Scenarios, 2)
	require.Equal(t, "Look elegante de hoy", resp.Scenarios[0].Label)
	require.Equal(t, "casual", resp.Scenarios[1].ID)
}

type testDeps struct {
	subscribers *stubSubscribers
	deliveries  *stubDeliveries
	storage     *stubStorage
	weather     *stubWeather
	generator   *stubGenerator
}

func newServiceUnderTest() (*Service, testDeps) {
	deps := testDeps{
		subscribers: &stubSubscribers{},
		deliveries:  &stubDeliveries{items: map[string]Delivery{}},
		storage:     &stubStorage{blobs: map[string][]byte{}},
		weather:     &stubWeather{snap: weather.Default()},
		generator:   &stubGenerator{},
	}
	svc := NewService(Config{Workers: 2, SubscriberDeadline: time.Minute}, deps.subscribers, deps.deliveries, deps.storage, deps.weather, deps.generator, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return fixedNow }
	return svc, deps
}

type stubSubscribers struct {
	subs []Subscriber
	err  error
}

func (s *stubSubscribers) ListActive(ctx context.Context) ([]Subscriber, error) {
	return s.subs, s.err
}

func (s *stubSubscribers) Get(ctx context.Context, id string) (Subscriber, bool, error) {
	for _, sub := range s.subs {
		if sub.ID == id {
			return sub, true, nil
		}
	}
	return Subscriber{}, false, s.err
}

type stubDeliveries struct {
	mu    sync.Mutex
	items map[string]Delivery
}

func (s *stubDeliveries) Find(ctx context.Context, subscriberID string, day int64) (Delivery, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.items[fmt.Sprintf("%s:%d", subscriberID, day)]
	return d, ok, nil
}

func (s *stubDeliveries) Record(ctx context.Context, d Delivery) (Delivery, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fmt.Sprintf("%s:%d", d.SubscriberID, d.Day)
	if existing, ok := s.items[key]; ok {
		return existing, false, nil
	}
	s.items[key] = d
	return d, true, nil
}

type stubStorage struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	puts     []string
	failPut  func(key string) bool
	honorCtx bool
}

func (s *stubStorage) Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.honorCtx && ctx.Err() != nil {
		return StoredObject{}, ctx.Err()
	}
	if s.failPut != nil && s.failPut(key) {
		return StoredObject{}, errors.New("bucket unavailable")
	}
	s.puts = append(s.puts, key)
	s.blobs[key] = data
	return StoredObject{Key: key, Size: int64(len(data)), MimeType: mimeType}, nil
}

func (s *stubStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *stubStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

func (s *stubStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type stubWeather struct {
	mu     sync.Mutex
	snap   weather.Snapshot
	coords weather.Coordinates
}

func (s *stubWeather) Current(ctx context.Context, coords weather.Coordinates) weather.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coords = coords
	return s.snap
}

type generateCall struct {
	photo     string
	gender    outfit.Gender
	kind      imagegen.EditKind
	scenarios []outfit.Scenario
}

type stubGenerator struct {
	mu    sync.Mutex
	calls []generateCall
}

func (s *stubGenerator) Generate(ctx context.Context, photoURI string, gender outfit.Gender, kind imagegen.EditKind, scenarios []outfit.Scenario) ([]imagegen.Look, error) {
	s.mu.Lock()
	s.calls = append(s.calls, generateCall{photo: photoURI, gender: gender, kind: kind, scenarios: scenarios})
	s.mu.Unlock()
	looks := make([]imagegen.Look, 0, len(scenarios))
	for _, sc := range scenarios {
		looks = append(looks, imagegen.Look{ID: sc.ID, Label: sc.Label, URL: imagegen.EncodeDataURI("image/png", []byte(sc.ID)), Model: "primary"})
	}
	return looks, nil
}

// interruptedGenerator finishes the first scenarios, then waits for ctx to end
// and returns what it has, like a batch hitting its deadline.
type interruptedGenerator struct {
	finished int
	onCall   func()

	mu    sync.Mutex
	calls int
}

func (g *interruptedGenerator) Generate(ctx context.Context, photoURI string, gender outfit.Gender, kind imagegen.EditKind, scenarios []outfit.Scenario) ([]imagegen.Look, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.onCall != nil {
		g.onCall()
	}
	looks := make([]imagegen.Look, 0, g.finished)
	for _, sc := range scenarios[:min(g.finished, len(scenarios))] {
		looks = append(looks, imagegen.Look{ID: sc.ID, Label: sc.Label, URL: imagegen.EncodeDataURI("image/png", []byte(sc.ID)), Model: "primary"})
	}
	<-ctx.Done()
	return looks, nil
}

func (g *interruptedGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func ptr(v float64) *float64 {
	return &v
}
