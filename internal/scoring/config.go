package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/growthfit/internal/catalog"
)

// AnswerKey maps a choice question ID to its correct option index.
// Choice questions absent from the key never earn points.
type AnswerKey map[string]int

// DimensionSource routes a WISCAR dimension to the questions that score it.
type DimensionSource struct {
	Dimension   Dimension
	QuestionIDs []string
}

// DimensionMapping is the ordered dimension → questions routing table.
type DimensionMapping []DimensionSource

// Weights blends section scores into the overall score.
// All weights must sum to 1.0 (±0.001 tolerance).
type Weights struct {
	Psychometric float64
	Technical    float64
	Wiscar       float64
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Psychometric + w.Technical + w.Wiscar
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Psychometric, w.Technical, w.Wiscar} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// Config holds the fixed heuristics of the scoring engine.
type Config struct {
	AnswerKey  AnswerKey
	Dimensions DimensionMapping
	Weights    Weights

	// PartialCredit is the WISCAR score for a wrong answer to a keyed
	// choice question.
	PartialCredit int

	RecommendationRules []Rule[Recommendation]
	Insights            InsightRules
	NextSteps           NextStepRules

	CareerPaths []CareerPath
	// MaxMatch caps every career-path match percentage.
	MaxMatch int
}

// DefaultConfig returns the growth-management assessment heuristics.
func DefaultConfig() Config {
	return Config{
		// psych_3 has no designated answer and always scores 0.
		AnswerKey: AnswerKey{
			"tech_1":    0,
			"tech_2":    0,
			"tech_3":    0,
			"tech_4":    1,
			"wiscar_c1": 2,
		},
		Dimensions: DimensionMapping{
			{Dimension: DimensionWill, QuestionIDs: []string{"wiscar_w1"}},
			{Dimension: DimensionInterest, QuestionIDs: []string{"wiscar_i1"}},
			{Dimension: DimensionSkill, QuestionIDs: []string{"wiscar_s1"}},
			{Dimension: DimensionCognitive, QuestionIDs: []string{"wiscar_c1"}},
			{Dimension: DimensionAbility, QuestionIDs: []string{"wiscar_a1"}},
			{Dimension: DimensionRealWorld, QuestionIDs: []string{"wiscar_r1"}},
		},
		Weights:             Weights{Psychometric: 0.3, Technical: 0.3, Wiscar: 0.4},
		PartialCredit:       20,
		RecommendationRules: DefaultRecommendationRules(),
		Insights:            DefaultInsightRules(),
		NextSteps:           DefaultNextStepRules(),
		CareerPaths:         DefaultCareerPaths(),
		MaxMatch:            95,
	}
}

// Validate checks cfg against the catalog it will score.
func (cfg Config) Validate(c *catalog.Catalog) error {
	var errs []error

	if err := cfg.Weights.Validate(); err != nil {
		errs = append(errs, err)
	}

	for id, idx := range cfg.AnswerKey {
		q, err := c.Get(id)
		if err != nil {
			errs = append(errs, fmt.Errorf("answer key: %w", err))
			continue
		}
		if !q.Type.IsChoice() {
			errs = append(errs, fmt.Errorf("answer key: %q is a %s question", id, q.Type))
			continue
		}
		if !q.Accepts(idx) {
			errs = append(errs, fmt.Errorf("answer key: index %d out of range for %q", idx, id))
		}
	}

	if len(cfg.Dimensions) == 0 {
		errs = append(errs, fmt.Errorf("no WISCAR dimensions configured"))
	}
	seen := make(map[Dimension]bool, len(cfg.Dimensions))
	for _, src := range cfg.Dimensions {
		if seen[src.Dimension] {
			errs = append(errs, fmt.Errorf("dimension %q mapped twice", src.Dimension))
		}
		seen[src.Dimension] = true
		if len(src.QuestionIDs) == 0 {
			errs = append(errs, fmt.Errorf("dimension %q has no questions", src.Dimension))
		}
		for _, id := range src.QuestionIDs {
			if !c.Has(id) {
				errs = append(errs, fmt.Errorf("dimension %q: question not found: %q", src.Dimension, id))
			}
		}
	}

	if cfg.PartialCredit < 0 || cfg.PartialCredit > 100 {
		errs = append(errs, fmt.Errorf("partial credit %d outside 0..100", cfg.PartialCredit))
	}
	if len(cfg.RecommendationRules) == 0 {
		errs = append(errs, fmt.Errorf("no recommendation rules configured"))
	}
	if cfg.MaxMatch < 0 || cfg.MaxMatch > 100 {
		errs = append(errs, fmt.Errorf("max match %d outside 0..100", cfg.MaxMatch))
	}
	for _, p := range cfg.CareerPaths {
		if p.BaseMatch < 0 || p.BaseMatch > 100 {
			errs = append(errs, fmt.Errorf("career path %q base match %d outside 0..100", p.Title, p.BaseMatch))
		}
	}

	return errors.Join(errs...)
}
