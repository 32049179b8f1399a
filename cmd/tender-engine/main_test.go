// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tender-engine/pkg/types"
)

// resetFlags restores every flag to its default so state does not leak
// between executions of the shared rootCmd.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func install(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("stub\n"), 0o644))
	}
	return root
}

var allFiles = []string{
	"agents/TenderWritingAgent.md",
	"workflows/GenerateTenderDocument.md",
	"input/tech.md",
	"input/score.md",
}

func TestRootRunsEngine(t *testing.T) {
	root := install(t, allFiles...)

	out, err := executeCommand(t, "--root", root, "--fast", "--no-color")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "🚀 启动 TenderWriter 模块引擎...\n"))
	assert.Contains(t, out, "最大并发数: 15")
	assert.Contains(t, out, "'generate arch_diagram_01'")
	assert.True(t, strings.HasSuffix(out, "\n✅ 引擎模拟运行完毕。\n"))
}

func TestRunSubcommandMatchesRoot(t *testing.T) {
	root := install(t, allFiles...)

	viaRoot, err := executeCommand(t, "--root", root, "--fast", "--no-color")
	require.NoError(t, err)
	viaRun, err := executeCommand(t, "run", "--root", root, "--fast", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, viaRoot, viaRun)
}

func TestRunMissingDefinitionSucceeds(t *testing.T) {
	root := install(t, allFiles[1:]...)

	out, err := executeCommand(t, "run", "--root", root, "--fast", "--no-color")
	require.NoError(t, err, "a missing file is not a command failure")

	assert.Contains(t, out, filepath.Join(root, "agents", "TenderWritingAgent.md"))
	assert.NotContains(t, out, "阶段 1")
}

func TestRunMissingInputSucceeds(t *testing.T) {
	root := install(t, allFiles[:3]...)

	out, err := executeCommand(t, "run", "--root", root, "--fast", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "阶段 1: 初始化与输入检查")
	assert.Contains(t, out, "❌ 错误: 输入文件缺失。")
	assert.NotContains(t, out, "阶段 2")
}

func TestRunRootFromEnvironment(t *testing.T) {
	root := install(t, allFiles...)
	t.Setenv("TENDER_ENGINE_ROOT", root)

	out, err := executeCommand(t, "run", "--fast", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "引擎模拟运行完毕")
}

func TestRunConfigFile(t *testing.T) {
	root := install(t, allFiles[:2]...)
	cfgPath := filepath.Join(t.TempDir(), "tender-engine.yaml")
	cfg := "root: " + root + "\ncolor: false\ndelays:\n  startup: 0s\n  step: 0s\n  phase: 0s\n  hold: 0s\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := executeCommand(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "❌ 错误: 输入文件缺失。")
}

func TestCheck(t *testing.T) {
	root := install(t, allFiles[:3]...)

	out, err := executeCommand(t, "check", "--root", root)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "ok"))
	assert.True(t, strings.HasPrefix(lines[3], "missing"))
	assert.Contains(t, lines[3], filepath.Join(root, "input", "score.md"))
	assert.Contains(t, out, "3 of 4 required files present")
}

func TestPhasesYAML(t *testing.T) {
	out, err := executeCommand(t, "phases", "--root", t.TempDir())
	require.NoError(t, err)

	var phases []types.Phase
	require.NoError(t, yaml.Unmarshal([]byte(out), &phases))
	require.Len(t, phases, 4)
	assert.Equal(t, "阶段 3: 内容生成 (模拟)", phases[2].Title)
	assert.Len(t, phases[0].Requires, 2)
}

func TestPhasesJSON(t *testing.T) {
	out, err := executeCommand(t, "phases", "--root", t.TempDir(), "--format", "json")
	require.NoError(t, err)

	var phases []types.Phase
	require.NoError(t, json.Unmarshal([]byte(out), &phases))
	require.Len(t, phases, 4)
	assert.Equal(t, types.StepNote, phases[3].Steps[3].Kind)
}

func TestPhasesUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "phases", "--root", t.TempDir(), "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunRejectsArguments(t *testing.T) {
	_, err := executeCommand(t, "run", "extra", "--fast")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tender-engine dev\n", out)
}
