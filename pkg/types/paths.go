// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paths holds the resolved locations the engine checks or mentions.
// All fields are absolute once produced by layout.Resolve.
type Paths struct {
	// Root is the installation root.
	Root string `json:"root" yaml:"root"`

	// AgentDef is the agent definition (agents/TenderWritingAgent.md).
	AgentDef string `json:"agent_def" yaml:"agent_def"`

	// WorkflowDef is the workflow definition (workflows/GenerateTenderDocument.md).
	WorkflowDef string `json:"workflow_def" yaml:"workflow_def"`

	// InputDir holds the tender inputs.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// TechFile is the technical requirements document (input/tech.md).
	TechFile string `json:"tech_file" yaml:"tech_file"`

	// ScoreFile is the scoring criteria document (input/score.md).
	ScoreFile string `json:"score_file" yaml:"score_file"`

	// OutputDir is only ever named in printed text. It is never created.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Definitions returns the definition files in check order.
func (p Paths) Definitions() []string {
	return []string{p.AgentDef, p.WorkflowDef}
}

// Inputs returns the input files in check order.
func (p Paths) Inputs() []string {
	return []string{p.TechFile, p.ScoreFile}
}
