package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"evento/pkg/api"
	"evento/pkg/event"
)

// HandlePurgeCommand processes --purge commands. which selects the events to
// delete: "ended" removes events whose end instant has passed, "all" removes
// everything. A confirmation prompt guards the deletion unless yes is set.
func HandlePurgeCommand(client *api.Client, which string, yes bool) {
	if which != "ended" && which != "all" {
		fmt.Printf("Unknown purge target: %s (use ended or all)\n", which)
		os.Exit(1)
	}

	events, err := client.List(context.Background())
	if err != nil {
		fmt.Printf("Error loading events: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	var doomed []event.Event
	for _, e := range events {
		if which == "all" || e.Status(now) == event.Ended {
			doomed = append(doomed, e)
		}
	}

	if len(doomed) == 0 {
		fmt.Println("Nothing to purge")
		return
	}

	if !yes {
		fmt.Printf("About to delete %d event(s). Continue? [y/N] ", len(doomed))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return
		}
	}

	for _, e := range doomed {
		if err := client.Delete(context.Background(), e.ID); err != nil {
			fmt.Printf("Error deleting %q: %v\n", e.Title, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Deleted %d event(s)\n", len(doomed))
}
