// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders transcript lines to a writer with display pacing.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/pdiddy/tender-engine/pkg/types"
)

const (
	stepPrefix = "[*] "
	ruleWidth  = 50
)

// Sleeper pauses for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the production Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Printer writes banners, phases, steps, notes and errors to w.
type Printer struct {
	w      io.Writer
	delays types.DelayConfig
	sleep  Sleeper
	paused time.Duration

	banner  *color.Color
	phase   *color.Color
	failure *color.Color
	success *color.Color
}

// NewPrinter returns a Printer. A nil sleep uses SleepContext. When colorize
// is false no escape codes are written, whatever the terminal.
func NewPrinter(w io.Writer, delays types.DelayConfig, sleep Sleeper, colorize bool) *Printer {
	if sleep == nil {
		sleep = SleepContext
	}
	p := &Printer{
		w:       w,
		delays:  delays,
		sleep:   sleep,
		banner:  color.New(color.Bold),
		phase:   color.New(color.FgCyan, color.Bold),
		failure: color.New(color.FgRed),
		success: color.New(color.FgGreen),
	}
	if !colorize {
		for _, c := range []*color.Color{p.banner, p.phase, p.failure, p.success} {
			c.DisableColor()
		}
	}
	return p
}

// Paused returns the total pause requested so far.
func (p *Printer) Paused() time.Duration {
	return p.paused
}

func (p *Printer) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	p.paused += d
	return p.sleep(ctx, d)
}

// Banner prints the startup banner followed by the startup delay.
func (p *Printer) Banner(ctx context.Context, text string) error {
	if _, err := p.banner.Fprintln(p.w, text); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}
	return p.pause(ctx, p.delays.Startup)
}

// Phase prints a ruled phase title followed by the phase delay.
func (p *Printer) Phase(ctx context.Context, title string) error {
	rule := strings.Repeat("=", ruleWidth)
	if _, err := fmt.Fprintln(p.w); err != nil {
		return fmt.Errorf("writing phase: %w", err)
	}
	for _, line := range []string{rule, "  " + title, rule} {
		if _, err := p.phase.Fprintln(p.w, line); err != nil {
			return fmt.Errorf("writing phase: %w", err)
		}
	}
	return p.pause(ctx, p.delays.Phase)
}

// Step renders s according to its kind and takes its pauses.
func (p *Printer) Step(ctx context.Context, s types.Step) error {
	if s.Kind == types.StepNote {
		if _, err := fmt.Fprintln(p.w, s.Text); err != nil {
			return fmt.Errorf("writing note: %w", err)
		}
	} else {
		if _, err := fmt.Fprintln(p.w, stepPrefix+s.Text); err != nil {
			return fmt.Errorf("writing step: %w", err)
		}
		if err := p.pause(ctx, p.delays.Step); err != nil {
			return err
		}
	}
	if s.Hold {
		return p.pause(ctx, p.delays.Hold)
	}
	return nil
}

// Announce is shorthand for Step with a plain "[*]" line.
func (p *Printer) Announce(ctx context.Context, text string) error {
	return p.Step(ctx, types.Step{Text: text})
}

// Error prints lines verbatim in the failure colour. No pause follows.
func (p *Printer) Error(lines ...string) error {
	for _, line := range lines {
		if _, err := p.failure.Fprintln(p.w, line); err != nil {
			return fmt.Errorf("writing error: %w", err)
		}
	}
	return nil
}

// Complete prints a blank line and then text in the success colour.
func (p *Printer) Complete(text string) error {
	if _, err := fmt.Fprintln(p.w); err != nil {
		return fmt.Errorf("writing completion: %w", err)
	}
	if _, err := p.success.Fprintln(p.w, text); err != nil {
		return fmt.Errorf("writing completion: %w", err)
	}
	return nil
}
