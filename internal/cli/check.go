package cli

import (
	"fmt"
	"time"

	"github.com/existflow/ironcal/internal/model"
	"github.com/existflow/ironcal/internal/validate"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a time slot for conflicts",
	Long: `Check whether a time slot overlaps any existing event on a date.

Examples:
  ironcal check --date 2024-06-01 --start 09:00 --end 10:00
  ironcal check -f 09:00 -t 10:00 --exclude 4f8c21aa-77e1-4af6-9f40-2d84a8c21b11`,
	RunE: runCheck,
}

var (
	checkDate    string
	checkStart   string
	checkEnd     string
	checkExclude string
)

func init() {
	checkCmd.Flags().StringVarP(&checkDate, "date", "d", "", "Date to check (YYYY-MM-DD, default today)")
	checkCmd.Flags().StringVarP(&checkStart, "start", "f", "", "Start time (HH:MM)")
	checkCmd.Flags().StringVarP(&checkEnd, "end", "t", "", "End time (HH:MM)")
	checkCmd.Flags().StringVar(&checkExclude, "exclude", "", "Event id to leave out of the comparison")
}

func runCheck(cmd *cobra.Command, args []string) error {
	date := checkDate
	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}

	// The conflict endpoint validates full payloads, so send a
	// placeholder title for the probe.
	in := validate.Input{
		Title:     "conflict probe",
		Date:      date,
		StartTime: checkStart,
		EndTime:   checkEnd,
		EventID:   checkExclude,
	}

	conflict, err := apiClient().CheckConflict(in)
	if err != nil {
		return fmt.Errorf("conflict check failed: %w", err)
	}

	if conflict {
		fmt.Printf("✗ %s %s-%s overlaps an existing event\n", date, checkStart, checkEnd)
	} else {
		fmt.Printf("✓ %s %s-%s is free\n", date, checkStart, checkEnd)
	}
	return nil
}
