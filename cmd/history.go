package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/growthfit/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.Results().List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No saved results yet. Run `growthfit take` to start.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-19s  %7s  %-14s  %s\n",
			"ID", "Taken", "Overall", "Recommendation", "Confidence")
		fmt.Fprintln(out, strings.Repeat("─", 96))
		for _, r := range recs {
			fmt.Fprintf(out, "%-36s  %-19s  %7d  %-14s  %d%%\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Result.OverallScore,
				r.Result.Recommendation,
				r.Result.Confidence)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a saved result (ID or unique prefix)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := st.Results().Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no saved result matches %q", args[0])
		}
		if err != nil {
			return err
		}

		if format == "text" {
			fmt.Fprintf(cmd.OutOrStdout(), "Result %s taken %s\n\n",
				rec.ID, rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return writeResult(cmd.OutOrStdout(), rec.Result, format)
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent results",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.Results().Prune(cmd.Context(), keep)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d result(s), kept up to %d.\n", n, keep)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of results to list (0 = all)")
	historyShowCmd.Flags().String("format", "text", "Output format: text or json")
	historyPruneCmd.Flags().Int("keep", 10, "Number of most recent results to keep")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
}
