package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/growthfit/internal/app"
	"github.com/abhisek/growthfit/internal/catalog"
	"github.com/abhisek/growthfit/internal/history"
	"github.com/abhisek/growthfit/internal/scoring"
	"github.com/abhisek/growthfit/internal/store"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the assessment interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

func init() {
	takeCmd.Flags().Bool("no-save", false, "Do not save the result to history")
}

// runTake opens the store unless saving is disabled and launches the TUI.
func runTake(cmd *cobra.Command) error {
	noSave, _ := cmd.Flags().GetBool("no-save")

	var repo store.ResultRepo
	if !noSave {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		repo = st.Results()
	}

	return app.Run(app.Options{
		Context:  cmd.Context(),
		Catalog:  catalog.Default(),
		Recorder: history.NewRecorder(scoring.Default(), repo, logger),
	})
}
