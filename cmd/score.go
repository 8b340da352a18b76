package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/growthfit/internal/catalog"
	"github.com/abhisek/growthfit/internal/history"
	"github.com/abhisek/growthfit/internal/responses"
	"github.com/abhisek/growthfit/internal/scoring"
	"github.com/abhisek/growthfit/internal/store"
	"github.com/abhisek/growthfit/internal/ui/report"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a JSON response file",
	Long: `Score a JSON response file of the form

  {"responses": [{"questionId": "psych_1", "value": 4}, ...]}

Rating questions take their scale value; choice questions take a zero-based
option index. Use "-" to read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("responses")
		format, _ := cmd.Flags().GetString("format")
		save, _ := cmd.Flags().GetBool("save")

		if format != "text" && format != "json" {
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}

		r, closeFn, err := openInput(cmd, path)
		if err != nil {
			return err
		}
		defer closeFn()

		c := catalog.Default()
		set, err := responses.Decode(r, c)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if missing := set.Missing(c); len(missing) > 0 {
			logger.Warn("scoring a partial response set",
				zap.Int("answered", set.Len()),
				zap.Strings("missing", missing))
		}

		var repo store.ResultRepo
		if save {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			repo = st.Results()
		}

		result, rec := history.NewRecorder(scoring.Default(), repo, logger).Score(cmd.Context(), set)
		if save && rec == nil {
			return fmt.Errorf("result could not be saved")
		}
		return writeResult(cmd.OutOrStdout(), result, format)
	},
}

func init() {
	scoreCmd.Flags().String("responses", "", "Path to the JSON response file, or - for stdin")
	scoreCmd.Flags().String("format", "text", "Output format: text or json")
	scoreCmd.Flags().Bool("save", false, "Save the result to history")
	_ = scoreCmd.MarkFlagRequired("responses")
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open responses: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// writeResult prints result as an indented JSON document or a styled report.
func writeResult(w io.Writer, result scoring.Result, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	_, err := lipgloss.Fprintln(w, report.Render(result, 100))
	return err
}
