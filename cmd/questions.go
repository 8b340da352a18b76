package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/growthfit/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		c := catalog.Default()
		out := cmd.OutOrStdout()

		sections := c.Sections()
		if category != "" {
			sec, ok := c.Section(catalog.Category(category))
			if !ok || len(c.ByCategory(sec.Category)) == 0 {
				return fmt.Errorf("no questions found for category %q", category)
			}
			sections = []catalog.SectionInfo{sec}
		}

		n := 0
		for _, sec := range sections {
			fmt.Fprintf(out, "%s %s\n", sec.Icon, sec.Title)
			fmt.Fprintln(out, strings.Repeat("─", 100))
			for _, q := range c.ByCategory(sec.Category) {
				prompt := q.Prompt
				if len(prompt) > 60 {
					prompt = prompt[:57] + "..."
				}
				lo, hi := q.ValueRange()
				fmt.Fprintf(out, "%-10s  %-14s  %-60s  %d..%d\n", q.ID, q.Type, prompt, lo, hi)
				n++
			}
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "%d questions\n", n)
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("category", "", "Filter by category (psychometric, technical, wiscar)")
}
