package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/growthfit/internal/scoring"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeResponses(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "responses.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestScoreJSON(t *testing.T) {
	path := writeResponses(t, `{"responses":[
		{"questionId":"tech_1","value":0},
		{"questionId":"tech_2","value":0},
		{"questionId":"tech_3","value":0},
		{"questionId":"tech_4","value":1},
		{"questionId":"tech_5","value":5}
	]}`)

	out, err := runCLI(t, "score", "--responses", path, "--format", "json")
	require.NoError(t, err)

	var r scoring.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 100, r.TechnicalScore)
	assert.Equal(t, 0, r.PsychometricScore)
	// 0.3*100 = 30
	assert.Equal(t, 30, r.OverallScore)
	assert.Equal(t, scoring.RecommendNo, r.Recommendation)
}

func TestScoreRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown question", `{"responses":[{"questionId":"nope","value":1}]}`, "nope"},
		{"out of range", `{"responses":[{"questionId":"psych_1","value":9}]}`, "psych_1"},
		{"schema", `{"responses":[{"questionId":"psych_1","value":"high"}]}`, "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "score", "--responses", writeResponses(t, tt.body), "--format", "json")
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tt.want)
		})
	}
}

func TestScoreAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	path := writeResponses(t, `{"responses":[{"questionId":"wiscar_c1","value":2}]}`)

	_, err := runCLI(t, "--db", db, "score", "--responses", path, "--format", "json", "--save")
	require.NoError(t, err)

	out, err := runCLI(t, "--db", db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Recommendation")
	assert.Contains(t, out, "no")

	out, err = runCLI(t, "--db", db, "history", "prune", "--keep", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 result(s)")
}

func TestQuestionsCategory(t *testing.T) {
	out, err := runCLI(t, "questions", "--category", "wiscar")
	require.NoError(t, err)
	assert.Contains(t, out, "WISCAR Framework Analysis")
	assert.Contains(t, out, "wiscar_c1")
	assert.Contains(t, out, "6 questions")
	assert.NotContains(t, out, "psych_1")

	_, err = runCLI(t, "questions", "--category", "astrology")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version", "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "growthfit "))
	assert.Contains(t, out, runtime.Version())
}

func TestVersionJSON(t *testing.T) {
	out, err := runCLI(t, "version", "--format", "json")
	require.NoError(t, err)

	var b buildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.NotEmpty(t, b.Version)
	assert.Equal(t, runtime.Version(), b.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, b.Platform)
}

func TestVersionLdflagsWins(t *testing.T) {
	old := version
	version = "v1.2.3"
	t.Cleanup(func() { version = old })

	assert.Equal(t, "v1.2.3", currentBuild().Version)
}

func TestVersionRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "version", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
