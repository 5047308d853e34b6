//go:build mage

// Package main contains Mage build targets for paper-spotlight developer tooling.
// See docs/ARCHITECTURE.md § Developer Tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "paper-spotlight"
	cmdPkg  = "./cmd/paper-spotlight"
)

// binPath is the built CLI, relative to the module root.
var binPath = filepath.Join(binDir, binName)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	if err := sh.RunV("go", "build", "-o", binPath, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests of every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Select builds the CLI and ranks the current trending candidates.
func Select() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "select")
}

// Write builds the CLI, selects the top paper, and writes its post.
// Needs OPENAI_API_KEY, a .env entry, or .secrets/openai-api-key.
func Write() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "write")
}

// Fetch builds the CLI and saves the current candidates to papers.yaml.
func Fetch() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "fetch", "--output", "papers.yaml")
}

// Stats prints project metrics: Go production/test LOC and documentation
// word count. Directories starting with "_" or "." are skipped, as the go
// tool does.
func Stats() error {
	var prodLines, testLines, docWords int
	err := walkProject(".", func(path string, data []byte) {
		switch {
		case strings.HasSuffix(path, "_test.go"):
			testLines += countLines(data)
		case filepath.Ext(path) == ".go":
			prodLines += countLines(data)
		case filepath.Ext(path) == ".md":
			docWords += len(bytes.Fields(data))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// walkProject calls fn with the contents of every regular file under root.
func walkProject(root string, fn func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fn(path, data)
		return nil
	})
}

// countLines counts non-blank lines.
func countLines(data []byte) int {
	n := 0
	for line := range bytes.Lines(data) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
