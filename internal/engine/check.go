// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"github.com/pdiddy/tender-engine/internal/layout"
	"github.com/pdiddy/tender-engine/internal/preflight"
)

// FileStatus reports the presence of one required file.
type FileStatus struct {
	Role    string `json:"role" yaml:"role"`
	Path    string `json:"path" yaml:"path"`
	Present bool   `json:"present" yaml:"present"`
}

// Check resolves the installation at root and reports every required file
// in the order Run checks them. Unlike Run it does not stop at the first
// missing file.
func Check(root string) ([]FileStatus, error) {
	p, err := layout.Resolve(root)
	if err != nil {
		return nil, err
	}
	files := []FileStatus{
		{Role: "agent definition", Path: p.AgentDef},
		{Role: "workflow definition", Path: p.WorkflowDef},
		{Role: "technical requirements", Path: p.TechFile},
		{Role: "scoring criteria", Path: p.ScoreFile},
	}
	for i := range files {
		files[i].Present = preflight.Exists(files[i].Path)
	}
	return files, nil
}
