// Package scoring turns a response set into a career-fit result.
//
// The engine is a pure function of its catalog, its Config, and the answers
// passed to Score. It performs no I/O, reads no clock, and never fails:
// unknown question IDs are ignored and values are used as given, so callers
// validate at the collection boundary (see package responses).
package scoring

import (
	"fmt"
	"sync"

	"github.com/abhisek/growthfit/internal/catalog"
)

// Engine scores response sets against one catalog. It is immutable and safe
// for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	cfg     Config

	psychometric []catalog.Question
	technical    []catalog.Question
}

// New returns an engine for c using cfg. It fails if cfg references
// questions that c does not contain or carries invalid weights.
func New(c *catalog.Catalog, cfg Config) (*Engine, error) {
	if err := cfg.Validate(c); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	return &Engine{
		catalog:      c,
		cfg:          cfg,
		psychometric: c.ByCategory(catalog.CategoryPsychometric),
		technical:    c.ByCategory(catalog.CategoryTechnical),
	}, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New(catalog.Default(), DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("scoring: %v", err))
	}
	return e
})

// Default returns the engine for the built-in catalog and DefaultConfig.
func Default() *Engine {
	return defaultEngine()
}

// Catalog returns the catalog this engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Score computes the full result for answers.
func (e *Engine) Score(answers Answers) Result {
	s := e.Scores(answers)
	return Result{
		PsychometricScore: s.Psychometric,
		TechnicalScore:    s.Technical,
		WiscarScores:      s.Wiscar,
		WiscarComposite:   s.WiscarComposite,
		OverallScore:      s.Overall,
		Recommendation:    s.Recommendation,
		Confidence:        Confidence(s.Psychometric, s.Technical, s.Wiscar),
		Insights:          e.cfg.Insights.Apply(s),
		NextSteps:         e.cfg.NextSteps.Apply(s),
		CareerPaths:       MatchCareers(e.cfg.CareerPaths, s.Overall, e.cfg.MaxMatch),
	}
}

// Scores computes the numeric scores and recommendation without generating
// any text.
func (e *Engine) Scores(answers Answers) Scores {
	if answers == nil {
		answers = noAnswers{}
	}
	s := Scores{
		Psychometric: SectionScore(e.psychometric, answers, e.cfg.AnswerKey),
		Technical:    SectionScore(e.technical, answers, e.cfg.AnswerKey),
		Wiscar:       DimensionScores(e.cfg.Dimensions, answers, e.cfg.AnswerKey, e.cfg.PartialCredit),
	}
	s.WiscarComposite = s.Wiscar.Composite()
	s.Overall = Overall(s.Psychometric, s.Technical, s.WiscarComposite, e.cfg.Weights)
	s.Recommendation = Recommend(e.cfg.RecommendationRules, s)
	return s
}

type noAnswers struct{}

func (noAnswers) Value(string) (int, bool) { return 0, false }
