//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiler builds the cmd/graphcompile binary.
func (Build) Compiler() error {
	fmt.Println("Build graphcompile...")
	_, err := executeCmd("go", withArgs("build", "-o", "bin/graphcompile", "./cmd/graphcompile"), withStream())
	return err
}
