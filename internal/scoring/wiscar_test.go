package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionScores_Cognitive(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		answers answerMap
		want    int
	}{
		{"correct pattern", answerMap{"wiscar_c1": 2}, 100},
		{"wrong pattern", answerMap{"wiscar_c1": 0}, 20},
		{"another wrong pattern", answerMap{"wiscar_c1": 3}, 20},
		{"unanswered", answerMap{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DimensionScores(cfg.Dimensions, tt.answers, cfg.AnswerKey, cfg.PartialCredit)
			assert.Equal(t, tt.want, got[DimensionCognitive])
		})
	}
}

func TestDimensionScores_Ratings(t *testing.T) {
	cfg := DefaultConfig()
	answers := answerMap{"wiscar_w1": 1, "wiscar_i1": 2, "wiscar_s1": 3, "wiscar_a1": 4, "wiscar_r1": 5}
	got := DimensionScores(cfg.Dimensions, answers, cfg.AnswerKey, cfg.PartialCredit)

	assert.Equal(t, WiscarScores{
		DimensionWill:      20,
		DimensionInterest:  40,
		DimensionSkill:     60,
		DimensionCognitive: 0,
		DimensionAbility:   80,
		DimensionRealWorld: 100,
	}, got)
}

func TestDimensionScores_AlwaysSixDimensions(t *testing.T) {
	cfg := DefaultConfig()
	got := DimensionScores(cfg.Dimensions, answerMap{}, cfg.AnswerKey, cfg.PartialCredit)
	assert.Len(t, got, 6)
	for _, d := range AllDimensions() {
		v, ok := got[d]
		assert.True(t, ok, "missing dimension %s", d)
		assert.Equal(t, 0, v)
	}
}

func TestDimensionScores_MultiQuestionLastAnsweredWins(t *testing.T) {
	m := DimensionMapping{
		{Dimension: DimensionWill, QuestionIDs: []string{"a", "b", "c"}},
	}
	got := DimensionScores(m, answerMap{"a": 5, "b": 2}, nil, 20)
	assert.Equal(t, 40, got[DimensionWill])
}

func TestWiscarScores_CompositeAndSpread(t *testing.T) {
	w := WiscarScores{
		DimensionWill:      100,
		DimensionInterest:  80,
		DimensionSkill:     60,
		DimensionCognitive: 20,
		DimensionAbility:   80,
		DimensionRealWorld: 100,
	}
	// (100+80+60+20+80+100)/6 = 73.33
	assert.Equal(t, 73, w.Composite())
	assert.Equal(t, 80, w.Spread())

	assert.Equal(t, 0, WiscarScores{}.Composite())
	assert.Equal(t, 0, WiscarScores{}.Spread())
	assert.Equal(t, 0, uniformWiscar(60).Spread())
}

func TestWiscarScores_CompositeRoundsHalfUp(t *testing.T) {
	// (61+60)/2 = 60.5
	w := WiscarScores{DimensionWill: 61, DimensionSkill: 60}
	assert.Equal(t, 61, w.Composite())
}
