package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/ironcal/internal/model"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [event-id]",
	Aliases: []string{"rm"},
	Short:   "Delete an event",
	Long: `Delete an event by its ID. A unique ID prefix is enough.

Examples:
  ironcal delete 4f8c21aa
  ironcal rm 4f8c21aa-77e1-4af6-9f40-2d84a8c21b11`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	c := apiClient()

	ev, err := resolveEvent(args[0])
	if err != nil {
		return err
	}

	if cfg.ConfirmDelete {
		fmt.Printf("About to delete: %q on %s %s-%s\n", ev.Title, ev.Date, ev.StartTime, ev.EndTime)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := c.DeleteEvent(ev.ID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	fmt.Printf("Deleted: %q\n", ev.Title)
	return nil
}

// resolveEvent finds an event by full id or unique id prefix
func resolveEvent(id string) (model.Event, error) {
	c := apiClient()

	if ev, err := c.GetEvent(id); err == nil {
		return ev, nil
	}

	events, err := c.ListEvents("", "")
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to look up event: %w", err)
	}

	var matches []model.Event
	for _, ev := range events {
		if strings.HasPrefix(ev.ID, id) {
			matches = append(matches, ev)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Event{}, fmt.Errorf("event not found: %s", id)
	default:
		return model.Event{}, fmt.Errorf("ambiguous id prefix %s (%d matches)", id, len(matches))
	}
}
