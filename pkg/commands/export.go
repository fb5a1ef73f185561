package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"evento/pkg/api"
	"evento/pkg/view"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(client *api.Client, filename, exportType string) {
	events, err := client.List(context.Background())
	if err != nil {
		fmt.Printf("Error loading events: %v\n", err)
		os.Exit(1)
	}

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(events, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling events to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		for _, group := range view.GroupByDate(events) {
			lines = append(lines, fmt.Sprintf("\n%s:", group.Date))
			for _, e := range group.Events {
				lines = append(lines, fmt.Sprintf("- %s-%s %s @ %s (%d/%d spots left)",
					e.StartTime, e.EndTime, e.Title, e.Location, e.SpotsLeft, e.Capacity))
			}
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d event(s) to %s\n", len(events), filename)
}
