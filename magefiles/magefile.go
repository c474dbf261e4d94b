// Package main contains Mage build targets for pubmed-proxy developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "pubmed-proxy"
	cmdPkg  = "./cmd/pubmed-proxy"
)

// binPath is where Build writes the binary.
var binPath = filepath.Join(binDir, binName)

// Build compiles the server binary into bin/. VERSION, when set, is stamped
// into the version subcommand.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", binDir)
	}
	ldflags := ""
	if v := os.Getenv("VERSION"); v != "" {
		ldflags = "-X main.version=" + v
	}
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, cmdPkg); err != nil {
		return errors.Wrap(err, "go build")
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
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

// skipDir reports directories Stats does not descend into.
func skipDir(path string) bool {
	base := filepath.Base(path)
	return path != "." && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == binDir)
}

// countGoLines counts non-blank lines in Go files under root. With testOnly
// it counts _test.go files; otherwise the rest.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skipDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countDocWords counts words in Markdown files under root.
func countDocWords(root string) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skipDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		total += len(bytes.Fields(data))
		return nil
	})
	return total, err
}
