// Command binddemo edits a profile in the terminal. Text inputs and the toggle are bound
// two-way to the profile; the summary labels are bound one-way and follow every edit.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ygrebnov/databind/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	ed := newEditor(profileFromConfig(cfg.Profile), logger)
	if _, err := tea.NewProgram(ed.form).Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	p, _ := ed.registry.Model()
	fmt.Println(summary(p))
}

// openLogger returns a discarding logger when no log path is configured. The terminal
// belongs to bubbletea, so records go to a file.
func openLogger(c config.LogConfig) (*slog.Logger, func(), error) {
	if c.Path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	level, err := c.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
