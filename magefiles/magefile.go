//go:build mage

// Package main provides build targets for the rolodex project using Mage.
//
// Usage:
//
//	mage build    Compile rolodex binary to bin/
//	mage test     Run all tests (unit + integration)
//	mage testUnit Run only unit tests (exclude tests/)
//	mage lint     Run golangci-lint
//	mage cover    Run tests with coverage report
//	mage clean    Remove build artifacts
//	mage install  Install rolodex to GOPATH/bin
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"
)

const (
	binaryName = "rolodex"
	binaryDir  = "bin"
	cmdDir     = "./cmd/rolodex"
)

// Build compiles the rolodex binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests (unit and integration).
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestUnit runs only unit tests, excluding the tests/ directory.
func TestUnit() error {
	pkgs, err := sh.Output("go", "list", "./...")
	if err != nil {
		return err
	}
	var unit []string
	for _, pkg := range strings.Fields(pkgs) {
		if !strings.Contains(pkg, "/tests/") {
			unit = append(unit, pkg)
		}
	}
	args := append([]string{"test"}, unit...)
	return sh.RunV("go", args...)
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Cover runs all tests with a coverage profile and prints the summary.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs the rolodex binary to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
