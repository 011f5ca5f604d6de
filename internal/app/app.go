// Package app wires configuration and the exposure classifier into the
// one-shot stdin-to-stdout pipeline used by cmd/daynight.
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/ironsheep/daynight/internal/config"
	"github.com/ironsheep/daynight/internal/exposure"
)

// App reads pixel lines and prints one exposure classification.
type App struct {
	cfg config.Config
}

// New creates an App for the given configuration.
func New(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// Run reads in to end of input, then writes "day" or "night" and a newline to
// out.
//
// If any line is malformed, Run returns the error and writes nothing to out.
func (a *App) Run(in io.Reader, out io.Writer) error {
	hist := exposure.NewHistogram()
	if err := hist.IngestReader(in, a.cfg.MaxLineBytes); err != nil {
		return fmt.Errorf("failed to read pixels: %w", err)
	}

	result := hist.Classify()
	if a.cfg.Debug() {
		log.Printf("Classified %d pixels: median index %d, threshold %.2f -> %s",
			hist.Total(), hist.MedianIndex(), exposure.NightThreshold, result)
	}

	if _, err := fmt.Fprintln(out, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
