package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/existflow/ironcal/internal/client"
	"github.com/existflow/ironcal/internal/model"
	"github.com/existflow/ironcal/internal/validate"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new event",
	Long: `Add a new event to the calendar.

Examples:
  ironcal add "Standup" --date 2024-06-01 --start 09:00 --end 09:30
  ironcal add "Team lunch" -d 2024-06-01 -f 12:00 -t 13:00 -l "Cafeteria"
  ironcal add "Focus block" -f 14:00 -t 16:00 --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDate     string
	addStart    string
	addEnd      string
	addDesc     string
	addLocation string
	addColor    string
	addForce    bool
)

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Event date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addStart, "start", "f", "", "Start time (HH:MM)")
	addCmd.Flags().StringVarP(&addEnd, "end", "t", "", "End time (HH:MM)")
	addCmd.Flags().StringVar(&addDesc, "description", "", "Event description")
	addCmd.Flags().StringVarP(&addLocation, "location", "l", "", "Event location")
	addCmd.Flags().StringVar(&addColor, "color", "", "Event color (hex token)")
	addCmd.Flags().BoolVar(&addForce, "force", false, "Create even if the slot overlaps an existing event")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := addDate
	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}

	in := validate.Input{
		Title:       strings.Join(args, " "),
		Date:        date,
		StartTime:   addStart,
		EndTime:     addEnd,
		Description: addDesc,
		Location:    addLocation,
		Color:       addColor,
	}

	warn := cfg.WarnOverlap && !addForce
	ev, err := apiClient().CreateEvent(in, warn)
	if errors.Is(err, client.ErrOverlap) {
		return fmt.Errorf("slot %s-%s on %s overlaps an existing event (use --force to add anyway)",
			in.StartTime, in.EndTime, in.Date)
	}
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	fmt.Printf("✓ Added %q on %s %s-%s\n", ev.Title, ev.Date, ev.StartTime, ev.EndTime)
	return nil
}
