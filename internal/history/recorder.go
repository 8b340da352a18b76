// Package history scores assessments and appends the outcome to the result
// history.
package history

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/growthfit/internal/scoring"
	"github.com/abhisek/growthfit/internal/store"
)

// Recorder scores answers with an engine and saves each result to a repo.
// A failed save is logged and does not fail the score.
type Recorder struct {
	engine *scoring.Engine
	repo   store.ResultRepo
	log    *zap.Logger
}

// NewRecorder wraps engine. A nil repo disables saving; a nil logger is
// replaced with a no-op logger.
func NewRecorder(engine *scoring.Engine, repo store.ResultRepo, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{engine: engine, repo: repo, log: log}
}

// Score computes the result for answers and records it. The returned record
// is nil when saving is disabled or failed.
func (r *Recorder) Score(ctx context.Context, answers scoring.Answers) (scoring.Result, *store.Record) {
	result := r.engine.Score(answers)
	r.log.Debug("assessment scored",
		zap.Int("overall", result.OverallScore),
		zap.String("recommendation", string(result.Recommendation)),
		zap.Int("confidence", result.Confidence),
	)

	if r.repo == nil {
		return result, nil
	}

	rec := &store.Record{Result: result}
	if err := r.repo.Save(ctx, rec); err != nil {
		r.log.Warn("failed to save result to history", zap.Error(err))
		return result, nil
	}
	r.log.Info("result saved", zap.String("id", rec.ID))
	return result, rec
}
