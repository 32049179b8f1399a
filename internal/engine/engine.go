// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine runs the simulated tender generation pipeline: it checks
// the definition and input files, then narrates each phase in order. No
// generation happens and nothing is written besides the transcript.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/tender-engine/internal/layout"
	"github.com/pdiddy/tender-engine/internal/preflight"
	"github.com/pdiddy/tender-engine/internal/report"
	"github.com/pdiddy/tender-engine/internal/script"
	"github.com/pdiddy/tender-engine/pkg/types"
)

type options struct {
	logger *zap.Logger
	sleep  report.Sleeper
}

// Option customises a run.
type Option func(*options)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSleeper replaces the pacing sleeper.
func WithSleeper(s report.Sleeper) Option {
	return func(o *options) { o.sleep = s }
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), sleep: report.SleepContext}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Run narrates one engine run to w. A missing definition or input file ends
// the run early with the matching Outcome; that is not an error. The
// returned error is non-nil only when the root cannot be resolved, w fails,
// or ctx is cancelled during a pause.
func Run(ctx context.Context, cfg types.EngineConfig, w io.Writer, opts ...Option) (types.RunResult, error) {
	o := buildOptions(opts)
	log := o.logger

	paths, err := layout.Resolve(cfg.Root)
	if err != nil {
		return types.RunResult{}, err
	}
	log.Debug("resolved installation", zap.String("root", paths.Root))

	p := report.NewPrinter(w, cfg.Delays, o.sleep, cfg.Color)
	result, err := narrate(ctx, p, paths, log)
	result.Paused = p.Paused()
	if err != nil {
		return result, err
	}

	log.Debug("engine run finished",
		zap.String("outcome", string(result.Outcome)),
		zap.Int("phases", result.PhasesRun),
		zap.Strings("missing", result.Missing),
		zap.Duration("paused", result.Paused))
	return result, nil
}

func narrate(ctx context.Context, p *report.Printer, paths types.Paths, log *zap.Logger) (types.RunResult, error) {
	var result types.RunResult

	if err := p.Banner(ctx, script.StartupBanner); err != nil {
		return result, err
	}

	for _, def := range script.Definitions(paths) {
		if err := p.Announce(ctx, def.Reading); err != nil {
			return result, err
		}
		if err := preflight.CheckFile(def.Path); err != nil {
			var missing *preflight.MissingFileError
			if !errors.As(err, &missing) {
				return result, fmt.Errorf("checking definition: %w", err)
			}
			log.Debug("definition missing", zap.String("path", missing.Path))
			result.Outcome = types.OutcomeMissingDefinition
			result.Missing = []string{missing.Path}
			return result, p.Error(def.Missing)
		}
		log.Debug("definition present", zap.String("path", def.Path))
	}

	for _, ph := range script.Phases(paths) {
		if err := p.Phase(ctx, ph.Title); err != nil {
			return result, err
		}
		result.PhasesRun++

		for _, s := range ph.Lead {
			if err := p.Step(ctx, s); err != nil {
				return result, err
			}
		}
		if missing := preflight.CheckAll(ph.Requires...); len(missing) > 0 {
			log.Debug("phase requirements missing", zap.Int("phase", ph.Number), zap.Strings("missing", missing))
			result.Outcome = types.OutcomeMissingInput
			result.Missing = missing
			return result, p.Error(ph.OnMissing...)
		}
		for _, s := range ph.Steps {
			if err := p.Step(ctx, s); err != nil {
				return result, err
			}
		}
	}

	result.Outcome = types.OutcomeCompleted
	return result, p.Complete(script.CompletionLine)
}
