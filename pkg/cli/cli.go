package cli

import (
	"flag"

	"evento/pkg/api"
	"evento/pkg/commands"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool
	APIURL     string

	// Event operations
	AddTitle     string
	DateFlag     string
	StartFlag    string
	EndFlag      string
	LocationFlag string
	CapacityFlag int

	// Export operations
	ExportFile string
	TypeFlag   string

	// Import/purge operations
	ImportFile  string
	PurgeTarget string
	Yes         bool
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	flag.StringVar(&args.APIURL, "api", "", "Events API base URL (overrides config)")

	// Event operations
	flag.StringVar(&args.AddTitle, "add", "", "Create a new event with this title")
	flag.StringVar(&args.DateFlag, "date", "", "Event date (YYYY-MM-DD)")
	flag.StringVar(&args.StartFlag, "start", "", "Event start time (HH:MM)")
	flag.StringVar(&args.EndFlag, "end", "", "Event end time (HH:MM)")
	flag.StringVar(&args.LocationFlag, "location", "", "Event location")
	flag.IntVar(&args.CapacityFlag, "capacity", 0, "Event capacity")

	// Export operations
	flag.StringVar(&args.ExportFile, "export", "", "Export events to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	// Import/purge operations
	flag.StringVar(&args.ImportFile, "import", "", "Import events from a JSON file")
	flag.StringVar(&args.PurgeTarget, "purge", "", "Delete events (ended, all)")
	flag.BoolVar(&args.Yes, "yes", false, "Skip the purge confirmation prompt")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(client *api.Client, args *Args) bool {
	if args.AddTitle != "" {
		commands.HandleAddEvent(client, commands.AddArgs{
			Title:    args.AddTitle,
			Date:     args.DateFlag,
			Start:    args.StartFlag,
			End:      args.EndFlag,
			Location: args.LocationFlag,
			Capacity: args.CapacityFlag,
		})
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(client, args.ExportFile, args.TypeFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(client, args.ImportFile)
		return true
	}

	if args.PurgeTarget != "" {
		commands.HandlePurgeCommand(client, args.PurgeTarget, args.Yes)
		return true
	}

	return false
}
