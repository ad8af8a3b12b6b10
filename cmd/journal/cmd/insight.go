package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/insight"
	"github.com/rustyeddy/tradejournal/metrics"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Build the generative-insight prompt for the journal",
	Long: `Assemble the natural-language prompt a generative model would be
given to comment on this journal. The prompt is printed; sending it to
a model is up to you.`,
	RunE: runInsight,
}

func init() {
	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer s.Close()

	months, err := s.ListMonths()
	if err != nil {
		return fmt.Errorf("list months: %w", err)
	}

	stats := metrics.CalcOverallStats(months)
	fmt.Println(insight.BuildPrompt(stats, months))
	return nil
}
