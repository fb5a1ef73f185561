package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"evento/pkg/api"
	"evento/pkg/cli"
	"evento/pkg/config"
	"evento/pkg/storage"
	"evento/pkg/store"
	"evento/pkg/ui"
	"evento/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Command-line override wins over config file and environment
	if args.APIURL != "" {
		cfg.APIURL = args.APIURL
	}

	client := api.NewClient(cfg.APIURL, cfg.APITimeout)

	// Handle one-shot CLI commands before starting the TUI
	if cli.HandleCommands(client, args) {
		return
	}

	uploader, err := storage.NewUploader(cfg.StorageCredentials())
	if err != nil {
		fmt.Printf("Error setting up image storage: %v\n", err)
		os.Exit(1)
	}

	eventStore := store.New(client, uploader)

	p := tea.NewProgram(ui.NewModel(eventStore, client, cfg, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
