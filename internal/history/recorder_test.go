package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/growthfit/internal/responses"
	"github.com/abhisek/growthfit/internal/scoring"
	"github.com/abhisek/growthfit/internal/store"
)

// mockRepo implements store.ResultRepo for testing.
type mockRepo struct {
	saved   []store.Record
	saveErr error
}

func (m *mockRepo) Save(_ context.Context, r *store.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if r.ID == "" {
		r.ID = "rec-1"
	}
	m.saved = append(m.saved, *r)
	return nil
}

func (m *mockRepo) Get(context.Context, string) (*store.Record, error) {
	return nil, store.ErrNotFound
}

func (m *mockRepo) List(context.Context, int) ([]store.Record, error) {
	return m.saved, nil
}

func (m *mockRepo) Prune(context.Context, int) (int, error) {
	return 0, nil
}

func TestRecorder_SavesResult(t *testing.T) {
	repo := &mockRepo{}
	r := NewRecorder(scoring.Default(), repo, nil)

	answers := responses.NewSet(responses.Response{QuestionID: "wiscar_c1", Value: 2})
	result, rec := r.Score(context.Background(), answers)

	require.NotNil(t, rec)
	assert.Equal(t, "rec-1", rec.ID)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, result, repo.saved[0].Result)
	assert.Equal(t, 100, result.WiscarScores[scoring.DimensionCognitive])
}

func TestRecorder_SaveFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := &mockRepo{saveErr: errors.New("disk full")}
	r := NewRecorder(scoring.Default(), repo, zap.New(core))

	result, rec := r.Score(context.Background(), responses.NewSet())

	assert.Nil(t, rec)
	assert.Equal(t, scoring.RecommendNo, result.Recommendation)
	entries := logs.FilterMessage("failed to save result to history").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
}

func TestRecorder_NilRepo(t *testing.T) {
	r := NewRecorder(scoring.Default(), nil, nil)
	result, rec := r.Score(context.Background(), nil)
	assert.Nil(t, rec)
	assert.Equal(t, 85, result.Confidence)
}

func TestRecorder_WithSQLiteStore(t *testing.T) {
	s, err := store.Open("file:recorder_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	r := NewRecorder(scoring.Default(), s.Results(), nil)
	result, rec := r.Score(context.Background(), responses.NewSet(
		responses.Response{QuestionID: "psych_1", Value: 5},
	))
	require.NotNil(t, rec)

	got, err := s.Results().Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, result.OverallScore, got.Result.OverallScore)
	assert.Equal(t, result.CareerPaths, got.Result.CareerPaths)
}
