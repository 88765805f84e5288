package cli

import (
	"fmt"

	"github.com/existflow/ironcal/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List events",
	Long: `List events, optionally limited to one date or a date range.

Examples:
  ironcal list
  ironcal list --date 2024-06-01
  ironcal list --from 2024-06-01 --to 2024-06-30`,
	RunE: runList,
}

var (
	listDate string
	listFrom string
	listTo   string
)

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Show a single date")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Range start date (inclusive)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Range end date (inclusive)")
}

func runList(cmd *cobra.Command, args []string) error {
	c := apiClient()

	var events []model.Event
	var err error
	if listDate != "" {
		events, err = c.EventsOnDate(listDate)
	} else {
		events, err = c.ListEvents(listFrom, listTo)
	}
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}

	date := ""
	for _, ev := range events {
		if ev.Date != date {
			date = ev.Date
			fmt.Printf("%s\n", date)
		}
		line := fmt.Sprintf("  %s-%s  %s", ev.StartTime, ev.EndTime, ev.Title)
		if ev.Location != "" {
			line += " @ " + ev.Location
		}
		fmt.Printf("%s  (%s)\n", line, shortID(ev.ID))
	}
	return nil
}

// shortID trims a UUID to its first group for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
