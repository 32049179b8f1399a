// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Default pacing used when the configuration leaves a delay unset.
const (
	DefaultStartupDelay = 1 * time.Second
	DefaultStepDelay    = 500 * time.Millisecond
	DefaultPhaseDelay   = 1 * time.Second
	DefaultHoldDelay    = 1 * time.Second
)

// DelayConfig holds the display pacing between transcript lines. The pauses
// exist only so a human can follow the narration; no work waits on them.
type DelayConfig struct {
	// Startup is the pause after the startup banner (default 1s).
	Startup time.Duration `json:"startup" yaml:"startup" mapstructure:"startup"`

	// Step is the pause after every "[*]" step line (default 500ms).
	Step time.Duration `json:"step" yaml:"step" mapstructure:"step"`

	// Phase is the pause after a phase banner (default 1s).
	Phase time.Duration `json:"phase" yaml:"phase" mapstructure:"phase"`

	// Hold is the extra pause taken by steps marked with a hold (default 1s).
	Hold time.Duration `json:"hold" yaml:"hold" mapstructure:"hold"`
}

// DefaultDelays returns the pacing used by the reference transcript.
func DefaultDelays() DelayConfig {
	return DelayConfig{
		Startup: DefaultStartupDelay,
		Step:    DefaultStepDelay,
		Phase:   DefaultPhaseDelay,
		Hold:    DefaultHoldDelay,
	}
}

// EngineConfig holds the settings for one simulated engine run.
type EngineConfig struct {
	// Root is the installation root. Every checked path is resolved
	// relative to it.
	Root string `json:"root" yaml:"root" mapstructure:"root"`

	// Delays controls display pacing.
	Delays DelayConfig `json:"delays" yaml:"delays" mapstructure:"delays"`

	// Color enables ANSI colouring of banners, errors and the completion line.
	Color bool `json:"color" yaml:"color" mapstructure:"color"`
}
