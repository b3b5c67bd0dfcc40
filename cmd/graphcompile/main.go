/*
graphcompile is a thin demonstration CLI around the render graph
compiler: it loads a declarative graph description and an optional
compiler config from TOML, compiles it, logs the resulting schedule and
physical-pass grouping, and (with -watch) recompiles whenever the
description file changes on disk.

Everything below this point is conventional glue a GPU-command
collaborator would replace with device selection, shader loading, and
frame execution; none of it is part of the compiler itself.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/rendergraph/rgcore"
	"github.com/spaghettifunk/rendergraph/rgconfig"
)

func main() {
	graphPath := flag.String("graph", "testdata/example_graph.toml", "path to a declarative graph description (TOML)")
	configPath := flag.String("config", "", "path to a compiler config (TOML); optional")
	watch := flag.Bool("watch", false, "recompile whenever -graph changes on disk")
	flag.Parse()

	cfg := rgconfig.DefaultCompilerConfig()
	if *configPath != "" {
		loaded, err := rgconfig.LoadCompilerConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.Apply(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := compileOnce(*graphPath); err != nil {
		rgcore.LogError("initial compile failed: %v", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}

	if err := watchAndRecompile(*graphPath); err != nil {
		rgcore.LogFatal("watch failed: %v", err)
	}
}

func compileOnce(graphPath string) error {
	desc, err := rgconfig.LoadGraphDescription(graphPath)
	if err != nil {
		return err
	}

	builder, err := desc.Compile()
	if err != nil {
		return err
	}

	renderer, err := builder.Build()
	if err != nil {
		return err
	}

	rgcore.LogInfo("build %s: %d physical pass(es), order=%v", renderer.BuildID, len(renderer.PhysicalPasses), renderer.Order)
	for i, pp := range renderer.PhysicalPasses {
		names := make([]string, len(pp.Subpasses))
		for j, s := range pp.Subpasses {
			names[j] = s.PassName
		}
		rgcore.LogDebug("physical pass %d: subpasses=%v external_deps=%d", i, names, len(pp.ExternalDependencies))
	}
	return nil
}

func watchAndRecompile(graphPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(graphPath); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	rgcore.LogInfo("watching %s for changes", graphPath)
	for {
		select {
		case e := <-watcher.Events:
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := compileOnce(graphPath); err != nil {
				rgcore.LogError("recompile failed: %v", err)
			}
		case err := <-watcher.Errors:
			rgcore.LogError("watcher error: %v", err)
		case <-sigCh:
			return nil
		}
	}
}
