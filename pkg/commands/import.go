package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"evento/pkg/api"
	"evento/pkg/event"
)

// HandleImportCommand processes --import commands: it reads a JSON array of
// events and creates each one through the API. Events that fail validation
// are skipped with a message rather than aborting the whole import.
func HandleImportCommand(client *api.Client, filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		fmt.Printf("Error parsing %s: %v\n", filename, err)
		os.Exit(1)
	}

	imported := 0
	for _, e := range events {
		e.ID = "" // the server assigns ids
		if err := e.Validate(); err != nil {
			fmt.Printf("Skipping %q: %v\n", e.Title, err)
			continue
		}
		if _, err := client.Create(context.Background(), e); err != nil {
			fmt.Printf("Error creating %q: %v\n", e.Title, err)
			os.Exit(1)
		}
		imported++
	}

	fmt.Printf("Successfully imported %d of %d event(s) from %s\n", imported, len(events), filename)
}
