package main

import (
	"fmt"
	"os"

	"prodtable/cmd"
	"prodtable/internal/dataset"
	"prodtable/internal/db"
	"prodtable/internal/model"
	"prodtable/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		return err
	}
	if config.ShowVersion {
		fmt.Println("prodtable", version)
		return nil
	}

	logger, closer, err := cmd.SetupLogging(config)
	if err != nil {
		return err
	}
	defer closer.Close()

	rows, source, err := loadProducts(config)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to load dataset")
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info().Str("source", source).Int("rows", len(rows)).Msg("dataset loaded")

	columns := dataset.Columns()
	for _, problem := range dataset.Validate(columns) {
		logger.Warn().Msg(problem)
	}

	// Create and run Bubble Tea app
	app := ui.New(rows, columns, ui.Options{
		PageSize: config.PageSize,
		Logger:   logger.With().Str("component", "ui").Logger(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

// loadProducts reads rows from the SQLite file, the JSON file, or the
// bundled dataset, in that order of preference.
func loadProducts(config *cmd.Config) ([]model.Product, string, error) {
	switch {
	case config.DBPath != "":
		database, err := db.Open(config.DBPath)
		if err != nil {
			return nil, config.DBPath, err
		}
		defer database.Close()
		rows, err := db.ListProducts(database)
		return rows, config.DBPath, err
	case config.DataPath != "":
		rows, err := dataset.LoadFile(config.DataPath)
		return rows, config.DataPath, err
	default:
		rows, err := dataset.Load()
		return rows, "embedded", err
	}
}
