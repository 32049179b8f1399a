// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()

	p, err := Resolve(root)
	require.NoError(t, err)

	assert.Equal(t, root, p.Root)
	assert.Equal(t, filepath.Join(root, "agents", "TenderWritingAgent.md"), p.AgentDef)
	assert.Equal(t, filepath.Join(root, "workflows", "GenerateTenderDocument.md"), p.WorkflowDef)
	assert.Equal(t, filepath.Join(root, "input"), p.InputDir)
	assert.Equal(t, filepath.Join(root, "input", "tech.md"), p.TechFile)
	assert.Equal(t, filepath.Join(root, "input", "score.md"), p.ScoreFile)
	assert.Equal(t, filepath.Join(root, "output"), p.OutputDir)
}

func TestResolveRelativeRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := Resolve("install")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(p.Root))
	assert.Equal(t, filepath.Join(wd, "install"), p.Root)
	assert.Equal(t, filepath.Join(wd, "install", "input", "tech.md"), p.TechFile)
}

func TestResolveCheckOrder(t *testing.T) {
	p, err := Resolve(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{p.AgentDef, p.WorkflowDef}, p.Definitions())
	assert.Equal(t, []string{p.TechFile, p.ScoreFile}, p.Inputs())
}

func TestDefaultRoot(t *testing.T) {
	root, err := DefaultRoot()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root))

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
