package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverall(t *testing.T) {
	w := DefaultConfig().Weights
	tests := []struct {
		name                  string
		psych, tech, wiscar, want int
	}{
		{"zeros", 0, 0, 0, 0},
		{"perfect", 100, 100, 100, 100},
		{"weighted", 80, 60, 50, 62},
		{"wiscar heavier", 0, 0, 100, 40},
		{"rounds down", 73, 47, 66, 62},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overall(tt.psych, tt.tech, tt.wiscar, w))
		})
	}
}

func TestConfidence(t *testing.T) {
	spread := WiscarScores{DimensionWill: 100, DimensionSkill: 20}
	tests := []struct {
		name        string
		psych, tech int
		wiscar      WiscarScores
		want        int
	}{
		{"no penalties", 70, 60, uniformWiscar(70), 85},
		{"section gap exactly 30", 90, 60, uniformWiscar(70), 85},
		{"section gap over 30", 90, 30, uniformWiscar(70), 70},
		{"section gap either direction", 30, 90, uniformWiscar(70), 70},
		{"wiscar spread exactly 40", 70, 70, WiscarScores{DimensionWill: 60, DimensionSkill: 20}, 85},
		{"wiscar spread over 40", 70, 70, spread, 75},
		{"both penalties", 100, 0, spread, 60},
		{"empty wiscar", 0, 0, WiscarScores{}, 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Confidence(tt.psych, tt.tech, tt.wiscar)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 60)
			assert.LessOrEqual(t, got, 85)
		})
	}
}

func TestWeights_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Weights.Validate())

	err := Weights{Psychometric: 0.5, Technical: 0.5, Wiscar: 0.5}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 1.0")

	err = Weights{Psychometric: 1.2, Technical: -0.2, Wiscar: 0}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}
