package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/novarame/weekplan/internal/generate"
	"github.com/novarame/weekplan/internal/model"
	"github.com/novarame/weekplan/internal/storage"
	"github.com/novarame/weekplan/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weekplan failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}
	defer store.Close()

	var gen generate.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := generate.NewGeminiClient(cfg.GeminiAPIKey,
			generate.WithModel(cfg.GeminiModel),
			generate.WithBaseURL(cfg.GeminiBaseURL),
		)
		if err != nil {
			return err
		}
		gen = client
	}

	ctx := context.Background()

	var restored *model.Schedule
	week, ok, schedErr := storage.LoadSchedule(ctx, store)
	if ok {
		restored = &week
	}

	var lastInput *model.UserInputData
	in, ok, inputErr := storage.LoadInput(ctx, store)
	if ok {
		lastInput = &in
	}

	m := update.NewModelWithRuntime(cfg, gen, store, restored, lastInput, errors.Join(schedErr, inputErr))
	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
