package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"jotlist/internal/ui"
)

// seedItems is the fixed starting content of the list.
var seedItems = []string{"red", "blue"}

// config holds the parsed CLI configuration for a jotlist run.
type config struct {
	noAltScreen bool
	plain       bool
}

func parseFlags() config {
	var cfg config

	flag.BoolVar(&cfg.noAltScreen, "no-altscreen", false, "render inline instead of taking over the screen")
	flag.BoolVar(&cfg.plain, "plain", false, "skip the terminal check (for piping output)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jotlist [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Jotlist is a todo list for your terminal: type, press enter, repeat.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	return cfg
}

func run(cfg config) error {
	if !cfg.plain && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal (use -plain to run anyway)")
	}

	model := ui.NewAppModel(seedItems)

	// Flush buffered spans on every exit path.
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := model.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "jotlist: flush telemetry: %v\n", err)
		}
	}()

	var opts []tea.ProgramOption
	if !cfg.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program: %w", err)
	}

	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "jotlist: %v\n", err)
		os.Exit(1)
	}
}
