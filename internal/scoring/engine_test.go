package scoring

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/growthfit/internal/catalog"
)

func TestScore_EmptyResponses(t *testing.T) {
	r := Default().Score(answerMap{})

	assert.Equal(t, 0, r.PsychometricScore)
	assert.Equal(t, 0, r.TechnicalScore)
	assert.Equal(t, 0, r.WiscarComposite)
	assert.Equal(t, 0, r.OverallScore)
	assert.Equal(t, RecommendNo, r.Recommendation)
	assert.Equal(t, 85, r.Confidence)
	assert.Len(t, r.WiscarScores, 6)
	for _, m := range r.CareerPaths {
		assert.Equal(t, 0, m.Match)
	}
	assert.Len(t, r.NextSteps, 3)
}

func TestScore_NilAnswers(t *testing.T) {
	assert.Equal(t, Default().Score(answerMap{}), Default().Score(nil))
}

func TestScore_PerfectResponses(t *testing.T) {
	r := Default().Score(perfectAnswers())

	assert.Equal(t, 100, r.PsychometricScore)
	assert.Equal(t, 100, r.TechnicalScore)
	assert.Equal(t, 100, r.WiscarComposite)
	assert.Equal(t, 100, r.OverallScore)
	assert.Equal(t, RecommendYes, r.Recommendation)
	assert.Equal(t, 85, r.Confidence)
	assert.Len(t, r.NextSteps, 4)

	require.Len(t, r.CareerPaths, 5)
	assert.Equal(t, CareerMatch{
		Title:       "Growth Product Manager",
		Description: "Drive user growth through product experiments and data analysis",
		Match:       85,
	}, r.CareerPaths[0])
	assert.Equal(t, 65, r.CareerPaths[4].Match)

	assert.Equal(t, []string{
		"You show strong psychological alignment with growth management roles.",
		"Your technical knowledge is strong - you're ready for advanced growth topics.",
		"Your motivation and career alignment are excellent - persistence will be key to success.",
	}, r.Insights)
}

func TestScore_UnkeyedSituationalCapsPsychometric(t *testing.T) {
	answers := perfectAnswers()
	answers["psych_3"] = 1
	r := Default().Score(answers)
	assert.Equal(t, 80, r.PsychometricScore)
}

func TestScore_CognitiveDimension(t *testing.T) {
	tests := []struct {
		name    string
		answers answerMap
		want    int
	}{
		{"correct", answerMap{"wiscar_c1": 2}, 100},
		{"wrong", answerMap{"wiscar_c1": 1}, 20},
		{"unanswered", answerMap{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Default().Score(tt.answers)
			assert.Equal(t, tt.want, r.WiscarScores[DimensionCognitive])
		})
	}
}

func TestScore_MixedProfile(t *testing.T) {
	answers := answerMap{
		"psych_1": 5, "psych_2": 4, "psych_3": 1, "psych_4": 5, "psych_5": 4,
		"tech_1": 0, "tech_2": 1, "tech_3": 0, "tech_4": 0, "tech_5": 2,
		"wiscar_w1": 4, "wiscar_i1": 5, "wiscar_s1": 2, "wiscar_c1": 2, "wiscar_a1": 5, "wiscar_r1": 4,
	}
	r := Default().Score(answers)

	// psych: (5+4+0+5+4)/25 = 72
	assert.Equal(t, 72, r.PsychometricScore)
	// tech: (5+0+5+0+2)/25 = 48
	assert.Equal(t, 48, r.TechnicalScore)
	assert.Equal(t, WiscarScores{
		DimensionWill: 80, DimensionInterest: 100, DimensionSkill: 40,
		DimensionCognitive: 100, DimensionAbility: 100, DimensionRealWorld: 80,
	}, r.WiscarScores)
	// (80+100+40+100+100+80)/6 = 83.33
	assert.Equal(t, 83, r.WiscarComposite)
	// 21.6 + 14.4 + 33.2 = 69.2
	assert.Equal(t, 69, r.OverallScore)
	assert.Equal(t, RecommendMaybe, r.Recommendation)
	// WISCAR spread 60 > 40.
	assert.Equal(t, 75, r.Confidence)
	assert.Equal(t, []string{
		"Strengthen your technical foundation with analytics courses",
		"Complete hands-on projects with data analysis tools",
		"Reassess after 3-6 months of focused learning",
	}, r.NextSteps)
	assert.Contains(t, r.Insights, "Gaining hands-on experience with analytics tools will significantly boost your readiness.")
}

func TestScore_Idempotent(t *testing.T) {
	e := Default()
	answers := perfectAnswers()
	answers["tech_2"] = 3
	answers["wiscar_s1"] = 1

	a, err := json.Marshal(e.Score(answers))
	require.NoError(t, err)
	b, err := json.Marshal(e.Score(answers))
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
	assert.Equal(t, e.Score(answers), e.Score(answers))
}

func TestScore_BoundsOnRandomAnswers(t *testing.T) {
	e := Default()
	qs := catalog.Default().Questions()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		answers := answerMap{}
		for _, q := range qs {
			if rng.IntN(4) == 0 {
				continue
			}
			lo, hi := q.ValueRange()
			answers[q.ID] = lo + rng.IntN(hi-lo+1)
		}

		r := e.Score(answers)
		for name, v := range map[string]int{
			"psychometric": r.PsychometricScore,
			"technical":    r.TechnicalScore,
			"composite":    r.WiscarComposite,
			"overall":      r.OverallScore,
		} {
			if v < 0 || v > 100 {
				t.Fatalf("%s score %d out of range for %v", name, v, answers)
			}
		}
		for d, v := range r.WiscarScores {
			if v < 0 || v > 100 {
				t.Fatalf("dimension %s score %d out of range", d, v)
			}
		}
		if r.Confidence < 60 || r.Confidence > 85 {
			t.Fatalf("confidence %d out of range", r.Confidence)
		}
		for j, m := range r.CareerPaths {
			if m.Match > 95 {
				t.Fatalf("career match %d above cap", m.Match)
			}
			if j > 0 && m.Match > r.CareerPaths[j-1].Match {
				t.Fatalf("career paths not sorted: %v", r.CareerPaths)
			}
		}
	}
}

func TestNew_RejectsConfigForOtherCatalog(t *testing.T) {
	small, err := catalog.New([]catalog.Question{
		{
			ID:       "only",
			Type:     catalog.TypeRatingScale,
			Category: catalog.CategoryPsychometric,
			Scale:    &catalog.Scale{Min: 1, Max: 5, Labels: []string{"1", "2", "3", "4", "5"}},
		},
	}, []catalog.SectionInfo{{Category: catalog.CategoryPsychometric}})
	require.NoError(t, err)

	_, err = New(small, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question not found")
}

func TestConfig_Validate(t *testing.T) {
	c := catalog.Default()
	require.NoError(t, DefaultConfig().Validate(c))

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"key on rating question", func(cfg *Config) { cfg.AnswerKey["psych_1"] = 0 }, "rating-scale"},
		{"key index out of range", func(cfg *Config) { cfg.AnswerKey["tech_1"] = 7 }, "out of range"},
		{"key unknown question", func(cfg *Config) { cfg.AnswerKey["nope"] = 0 }, "not found"},
		{"duplicate dimension", func(cfg *Config) {
			cfg.Dimensions = append(cfg.Dimensions, DimensionSource{Dimension: DimensionWill, QuestionIDs: []string{"wiscar_w1"}})
		}, "mapped twice"},
		{"empty dimension", func(cfg *Config) {
			cfg.Dimensions[0].QuestionIDs = nil
		}, "no questions"},
		{"bad weights", func(cfg *Config) { cfg.Weights.Wiscar = 0.9 }, "must sum to 1.0"},
		{"no rules", func(cfg *Config) { cfg.RecommendationRules = nil }, "no recommendation rules"},
		{"bad cap", func(cfg *Config) { cfg.MaxMatch = 120 }, "max match"},
		{"bad base match", func(cfg *Config) { cfg.CareerPaths[0].BaseMatch = -1 }, "base match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
