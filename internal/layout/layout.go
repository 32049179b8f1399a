// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout resolves the fixed file locations of a tender-engine
// installation relative to its root directory.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/tender-engine/pkg/types"
)

const (
	agentsDir    = "agents"
	workflowsDir = "workflows"
	inputDir     = "input"
	outputDir    = "output"

	agentDefFile    = "TenderWritingAgent.md"
	workflowDefFile = "GenerateTenderDocument.md"
	techFile        = "tech.md"
	scoreFile       = "score.md"
)

// Dirs lists the directories an installation is expected to contain.
var Dirs = []string{agentsDir, workflowsDir, inputDir, outputDir}

// Resolve builds the absolute Paths for an installation rooted at root.
// A relative root is made absolute against the working directory.
func Resolve(root string) (types.Paths, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return types.Paths{}, fmt.Errorf("resolving root %s: %w", root, err)
	}
	in := filepath.Join(abs, inputDir)
	return types.Paths{
		Root:        abs,
		AgentDef:    filepath.Join(abs, agentsDir, agentDefFile),
		WorkflowDef: filepath.Join(abs, workflowsDir, workflowDefFile),
		InputDir:    in,
		TechFile:    filepath.Join(in, techFile),
		ScoreFile:   filepath.Join(in, scoreFile),
		OutputDir:   filepath.Join(abs, outputDir),
	}, nil
}

// DefaultRoot returns the directory holding the running executable, with
// symlinks resolved.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
