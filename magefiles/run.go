//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Compiler runs cmd/graphcompile against testdata/example_graph.toml.
func (Run) Compiler() error {
	fmt.Println("Run graphcompile...")
	_, err := executeCmd("go", withArgs("run", "./cmd/graphcompile", "-graph", "testdata/example_graph.toml"), withStream())
	return err
}

type Test mg.Namespace

// All runs go vet followed by go test ./... .
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
