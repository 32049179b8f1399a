// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// StepKind selects how a transcript line is rendered.
type StepKind string

const (
	// StepAnnounce is printed as "[*] text" and followed by the step delay.
	StepAnnounce StepKind = "step"

	// StepNote is printed verbatim with no delay.
	StepNote StepKind = "note"
)

// Step is a single line within a phase.
type Step struct {
	// Text is the message, without the "[*] " prefix.
	Text string `json:"text" yaml:"text"`

	// Kind selects the rendering; empty means StepAnnounce.
	Kind StepKind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Hold marks a step that is followed by an extra pause after its own delay.
	Hold bool `json:"hold,omitempty" yaml:"hold,omitempty"`
}

// Phase is one of the numbered pipeline stages printed in sequence.
type Phase struct {
	// Number is the 1-based phase number.
	Number int `json:"number" yaml:"number"`

	// Title is the banner text, including the "阶段 N:" prefix.
	Title string `json:"title" yaml:"title"`

	// Lead lists lines printed before the Requires check.
	Lead []Step `json:"lead,omitempty" yaml:"lead,omitempty"`

	// Requires lists files that must exist for the phase to continue past
	// its lead lines.
	Requires []string `json:"requires,omitempty" yaml:"requires,omitempty"`

	// OnMissing is printed verbatim when any Requires entry is absent; the
	// run then stops.
	OnMissing []string `json:"on_missing,omitempty" yaml:"on_missing,omitempty"`

	// Steps lists the phase's lines in print order.
	Steps []Step `json:"steps" yaml:"steps"`
}

// Outcome records how an engine run ended.
type Outcome string

const (
	OutcomeCompleted         Outcome = "completed"
	OutcomeMissingDefinition Outcome = "missing-definition"
	OutcomeMissingInput      Outcome = "missing-input"
)

// RunResult summarises an engine run for callers and tests.
type RunResult struct {
	// Outcome is how the run ended.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Missing lists the absolute paths that failed the existence check.
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`

	// PhasesRun counts the phase banners printed.
	PhasesRun int `json:"phases_run" yaml:"phases_run"`

	// Paused is the total pacing requested from the sleeper.
	Paused time.Duration `json:"paused" yaml:"paused"`
}

// Completed reports whether every phase ran.
func (r RunResult) Completed() bool {
	return r.Outcome == OutcomeCompleted
}
