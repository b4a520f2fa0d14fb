//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "predtrans"

var Default = Build

// Build compiles the predtrans binary into the repository root.
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/predtrans")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install copies the binary to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)

	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	dest := filepath.Join(gopath, "bin", binary)
	if err := sh.Copy(dest, binary); err != nil {
		return fmt.Errorf("failed to install %s: %w", dest, err)
	}
	return os.Chmod(dest, 0755)
}

// Clean removes the built binary.
func Clean() error {
	return sh.Rm(binary)
}
