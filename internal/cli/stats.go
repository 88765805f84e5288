package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show calendar statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	stats, err := apiClient().Stats()
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}

	fmt.Printf("Total events:    %d\n", stats.TotalEvents)
	fmt.Printf("Today:           %d\n", stats.TodayEvents)
	fmt.Printf("Upcoming:        %d\n", stats.UpcomingEvents)
	return nil
}
