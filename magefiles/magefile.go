//go:build mage

// Package main contains Mage build targets for tender-engine developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "tender-engine"
	cmdPkg  = "./cmd/tender-engine"

	// sandboxDir is the default installation root used by Init and Run.
	sandboxDir = "sandbox"
)

// scaffold lists the stub files Init writes, keyed by path relative to the
// installation root.
var scaffold = map[string]string{
	"agents/TenderWritingAgent.md":        "# TenderWritingAgent\n",
	"workflows/GenerateTenderDocument.md": "# GenerateTenderDocument\n",
	"input/tech.md":                       "# 技术需求文档\n",
	"input/score.md":                      "# 评分标准文档\n",
}

// installRoot returns TENDER_ENGINE_ROOT when set, otherwise the sandbox.
func installRoot() string {
	if root := os.Getenv("TENDER_ENGINE_ROOT"); root != "" {
		return root
	}
	return sandboxDir
}

// Init scaffolds an installation root with placeholder definition and input
// files. Existing files are left untouched.
func Init() error {
	root := installRoot()
	for _, dir := range []string{"agents", "workflows", "input", "output"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	for rel, content := range scaffold {
		path := filepath.Join(root, rel)
		if _, err := os.Stat(path); err == nil {
			fmt.Println("   exists ", path)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("   created", path)
	}
	fmt.Println("Installation initialized at", root)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Run builds the binary and narrates a run against the installation root.
func Run() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "run", "--root", installRoot())
}

// Check builds the binary and reports the required files.
func Check() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "check", "--root", installRoot())
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}
