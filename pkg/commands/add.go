package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"evento/pkg/api"
	"evento/pkg/event"
)

// AddArgs carries the fields of the --add command
type AddArgs struct {
	Title    string
	Date     string
	Start    string
	End      string
	Location string
	Capacity int
}

// HandleAddEvent processes the --add command
func HandleAddEvent(client *api.Client, args AddArgs) {
	// Default to an all-day event today when date/times are not given
	if args.Date == "" {
		args.Date = time.Now().Format("2006-01-02")
	}
	if args.Start == "" {
		args.Start = "00:00"
	}
	if args.End == "" {
		args.End = "23:59"
	}

	e := event.Event{
		Title:      args.Title,
		Date:       args.Date,
		StartTime:  args.Start,
		EndTime:    args.End,
		Location:   args.Location,
		Capacity:   args.Capacity,
		SpotsLeft:  args.Capacity,
		Categories: []string{},
	}

	if err := e.Validate(); err != nil {
		fmt.Printf("Invalid event: %v\n", err)
		os.Exit(1)
	}

	created, err := client.Create(context.Background(), e)
	if err != nil {
		fmt.Printf("Error creating event: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Event created: %s (%s %s-%s)\n", created.Title, created.Date, created.StartTime, created.EndTime)
}
