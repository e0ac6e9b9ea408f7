package imagegen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-look/internal/domain/outfit"
	apperrors "github.com/yanqian/daily-look/pkg/errors"
)

func TestBatchSkipsFailedScenario(t *testing.T) {
	gen := &stubGenerator{fail: map[string]bool{"s3": true}}
	batch, sleeps := newBatchUnderTest(gen, 0)

	scenarios := []outfit.Scenario{
		{ID: "s1", Label: "one"}, {ID: "s2", Label: "two"}, {ID: "s3", Label: "three"}, {ID: "s4", Label: "four"}, {ID: "s5", Label: "five"},
	}
	looks, err := batch.Generate(context.Background(), testPhoto, outfit.GenderFemale, EditClothing, scenarios)
	require.NoError(t, err)
	require.Len(t, looks, 4)
	require.Equal(t, []string{"s1", "s2", "s4", "s5"}, lookIDs(looks))
	require.Equal(t, "four", looks[2].Label)
	require.Equal(t, "data:image/png;base64,czQ=", looks[2].URL)
	require.Equal(t, []string{"s1", "s2", "s3", "s4", "s5"}, gen.calls)
	require.Equal(t, []time.Duration{time.Second, time.Second, time.Second, time.Second}, *sleeps)
}

func TestBatchDeduplicatesIDs(t *testing.T) {
	gen := &stubGenerator{}
	batch, sleeps := newBatchUnderTest(gen, 0)

	looks, err := batch.Generate(context.Background(), testPhoto, outfit.GenderMale, EditClothing, []outfit.Scenario{{ID: "dressy"}, {ID: "dressy"}, {ID: "casual"}})
	require.NoError(t, err)
	require.Equal(t, []string{"dressy", "casual"}, lookIDs(looks))
	require.Len(t, *sleeps, 1)
}

func TestBatchAbortsOnUnreadablePhoto(t *testing.T) {
	gen := &stubGenerator{}
	batch, _ := newBatchUnderTest(gen, 0)

	looks, err := batch.Generate(context.Background(), "not-a-photo", outfit.GenderMale, EditClothing, []outfit.Scenario{{ID: "dressy"}})
	require.Nil(t, looks)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Empty(t, gen.calls)
}

func TestBatchDeadlineReturnsPartialResults(t *testing.T) {
	gen := &stubGenerator{}
	batch, _ := newBatchUnderTest(gen, time.Hour)
	batch.sleep = func(ctx context.Context, d time.Duration) error {
		return context.DeadlineExceeded
	}

	looks, err := batch.Generate(context.Background(), testPhoto, outfit.GenderMale, EditClothing, []outfit.Scenario{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, lookIDs(looks))
	require.Equal(t, []string{"a"}, gen.calls)
}

func TestBatchWithOrchestrator(t *testing.T) {
	editor := &stubEditor{replies: map[string][]editReply{
		"primary": {{err: errStatus500}, {resp: imageResponse("image/png", []byte("b"))}},
		"secondary": {{resp: imageResponse("image/jpeg", []byte("a"))}},
	}}
	orch, _ := newOrchestratorUnderTest(editor)
	batch, _ := newBatchUnderTest(orch, 0)

	looks, err := batch.Generate(context.Background(), testPhoto, outfit.GenderFemale, EditClothing, []outfit.Scenario{{ID: "dressy"}, {ID: "casual"}})
	require.NoError(t, err)
	require.Len(t, looks, 2)
	require.Equal(t, "secondary", looks[0].Model)
	require.Equal(t, "primary", looks[1].Model)
}

type stubGenerator struct {
	fail  map[string]bool
	calls []string
}

func (s *stubGenerator) EditPhoto(ctx context.Context, photoURI string, sc outfit.Scenario, gender outfit.Gender, kind EditKind) (Result, error) {
	s.calls = append(s.calls, sc.ID)
	if s.fail[sc.ID] {
		return Result{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "image generation failed", errors.Join(ErrNoImage, errStatus500))
	}
	return Result{ScenarioID: sc.ID, DataURI: EncodeDataURI("image/png", []byte(sc.ID)), Model: "primary", Attempts: 1}, nil
}

func newBatchUnderTest(gen Generator, deadline time.Duration) (*Batch, *[]time.Duration) {
	cfg := DefaultConfig()
	cfg.BatchDeadline = deadline
	batch := NewBatch(cfg, gen, newTestLogger())
	sleeps := &[]time.Duration{}
	batch.sleep = func(ctx context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return ctx.Err()
	}
	return batch, sleeps
}

func lookIDs(looks []Look) []string {
	ids := make([]string, 0, len(looks))
	for _, l := range looks {
		ids = append(ids, l.ID)
	}
	return ids
}
