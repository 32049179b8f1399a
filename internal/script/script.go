// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package script holds the narrated transcript of a simulated tender
// generation run as data. The engine walks it; tests assert against it.
package script

import (
	"fmt"
	"path/filepath"

	"github.com/pdiddy/tender-engine/pkg/types"
)

const (
	// MaxConcurrency is the concurrency level announced in phase 3.
	// Nothing runs concurrently.
	MaxConcurrency = 15

	// PlaceholderMarker is the content marker phase 4 claims to scan for.
	PlaceholderMarker = "[!IMAGE]"

	// PendingAssets is the diagram count phase 4 reports as found.
	PendingAssets = 3

	// ExampleInstruction is the next-action hint printed at the end of phase 4.
	ExampleInstruction = "generate arch_diagram_01"
)

const (
	StartupBanner  = "🚀 启动 TenderWriter 模块引擎..."
	CompletionLine = "✅ 引擎模拟运行完毕。"
)

// Definition is one definition file together with the lines announcing it.
type Definition struct {
	Path    string
	Reading string
	Missing string
}

// Definitions returns the agent and workflow definitions in check order.
func Definitions(p types.Paths) []Definition {
	return []Definition{
		{
			Path:    p.AgentDef,
			Reading: "正在读取代理定义: " + filepath.Base(p.AgentDef),
			Missing: "❌ 错误: 代理定义文件未找到 at " + p.AgentDef,
		},
		{
			Path:    p.WorkflowDef,
			Reading: "正在读取工作流定义: " + filepath.Base(p.WorkflowDef),
			Missing: "❌ 错误: 工作流定义文件未找到 at " + p.WorkflowDef,
		},
	}
}

// Phases returns the four pipeline phases in print order.
func Phases(p types.Paths) []types.Phase {
	out := filepath.Base(p.OutputDir)
	return []types.Phase{
		{
			Number:   1,
			Title:    "阶段 1: 初始化与输入检查",
			Lead:     []types.Step{{Text: "检查输入文件..."}},
			Requires: p.Inputs(),
			OnMissing: []string{
				"❌ 错误: 输入文件缺失。",
				fmt.Sprintf("   请确保以下文件存在于 '%s' 目录中:", filepath.Base(p.InputDir)),
				"   - tech.md (技术需求文档)",
				"   - score.md (评分标准文档)",
			},
			Steps: []types.Step{
				{Text: fmt.Sprintf("✅ 输入文件 '%s' 和 '%s' 已找到。", filepath.Base(p.TechFile), filepath.Base(p.ScoreFile))},
			},
		},
		{
			Number: 2,
			Title:  "阶段 2: 大纲生成 (模拟)",
			Steps: []types.Step{
				{Text: "调用 GenerateOutlineTask..."},
				{Text: "分析输入文档..."},
				{Text: "生成结构化大纲..."},
				{Text: fmt.Sprintf("✅ 模拟完成: 'outline.json' 和 'outline.md' 将被创建于 '%s'", out)},
			},
		},
		{
			Number: 3,
			Title:  "阶段 3: 内容生成 (模拟)",
			Steps: []types.Step{
				{Text: "调用 GenerateContentTask..."},
				{Text: "解析 'outline.json' 并创建内容生成任务队列..."},
				{Text: fmt.Sprintf("启动并发 LLM 调用 (最大并发数: %d)...", MaxConcurrency)},
				{Text: "...", Hold: true},
				{Text: "内容生成中...", Hold: true},
				{Text: "..."},
				{Text: fmt.Sprintf("✅ 模拟完成: 'content.md' 和结构化目录将被创建于 '%s/content'", out)},
			},
		},
		{
			Number: 4,
			Title:  "阶段 4: 资产生成 (等待指令)",
			Steps: []types.Step{
				{Text: "调用 AssetGenerationTask..."},
				{Text: fmt.Sprintf("扫描内容文件中的 '%s' 占位符...", PlaceholderMarker)},
				{Text: fmt.Sprintf("✅ 模拟完成: 找到 %d 个待生成的图表。", PendingAssets)},
				{Text: fmt.Sprintf("   现在您可以下达指令, 例如: '%s'", ExampleInstruction), Kind: types.StepNote},
			},
		},
	}
}
