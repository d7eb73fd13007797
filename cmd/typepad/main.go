package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/db/dbopen"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/transliteration"
	"github.com/jusunglee/hinditype/internal/typepad"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hinditype-typepad")
	var (
		mode        = fs.StringEnumLong("mode", "Starting input mode", "phonetic", "inscript", "remington", "legacy", "direct")
		databaseURL = fs.StringLong("database-url", "", "Prompt store for practice sentences (none when empty)")
		difficulty  = fs.StringEnumLong("difficulty", "Practice sentence difficulty", "", db.DifficultyEasy, db.DifficultyMedium, db.DifficultyHard)
		layoutsDir  = fs.StringLong("layouts-dir", "", "Directory of extra .toml/.yaml keyboard layouts")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *layoutsDir != "" {
		if _, err := layout.LoadDir(layout.Default, *layoutsDir); err != nil {
			return fmt.Errorf("loading layouts: %w", err)
		}
	}

	var repo db.Repository
	if *databaseURL != "" {
		r, err := dbopen.Open(context.Background(), *databaseURL)
		if err != nil {
			return err
		}
		defer r.Close()
		repo = r
	}

	m := typepad.New(transliteration.ParseMode(*mode), layout.Default, repo, *difficulty)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running typepad: %w", err)
	}
	return nil
}
