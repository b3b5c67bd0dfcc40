// Package graph implements the render graph compiler: a build-time
// planner that accepts a declarative description of a frame's rendering
// work (attachments and passes) and produces an executable Renderer
// artifact ordering and grouping that work for a GPU-command executor.
//
// Builder owns every Attachment and Pass allocated through it for its
// own lifetime, arena-style; Build consumes that ownership and returns a
// frozen Renderer, or a diagnostic drawn from the closed set in
// errors.go.
package graph

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/rendergraph/rgcore"
)

// Builder accumulates attachment and pass declarations. It is not safe
// for concurrent use; nothing about it ever blocks or yields.
type Builder struct {
	attachments []*Attachment
	passes      []*Pass
	backbuffer  *Attachment
}

// NewBuilder returns a fresh builder with the backbuffer attachment
// preinstalled.
func NewBuilder() *Builder {
	return &Builder{
		backbuffer: newAttachment(BackbufferName, FormatR8G8B8A8Unorm, 1),
	}
}

// AddAttachment declares a new attachment and returns a handle to it,
// recorded in declaration order. Do not pass BackbufferName here; use
// BackbufferAttachment instead.
func (b *Builder) AddAttachment(name string, format Format, samples int) *Attachment {
	a := newAttachment(name, format, samples)
	b.attachments = append(b.attachments, a)
	return a
}

// AddDepthAttachment is shorthand for AddAttachment with the default
// depth format.
func (b *Builder) AddDepthAttachment(name string, samples int) *Attachment {
	return b.AddAttachment(name, DefaultDepthFormat, samples)
}

// AddPass declares a new pass and returns a handle to it.
func (b *Builder) AddPass(name string) *Pass {
	p := newPass(name)
	b.passes = append(b.passes, p)
	return p
}

// BackbufferAttachment returns the handle to the reserved, builder-owned
// backbuffer attachment.
func (b *Builder) BackbufferAttachment() *Attachment {
	return b.backbuffer
}

// Build validates the description, constructs the dependency graph,
// schedules it, merges the result into physical passes, and returns the
// frozen Renderer artifact. It either returns a complete artifact or no
// artifact: on any failure the half-built scheduler state is discarded.
func (b *Builder) Build() (*Renderer, error) {
	if err := validate(b.passes); err != nil {
		rgcore.LogError("render graph build failed during validation: %v", err)
		return nil, err
	}

	_, ordered := buildDependencyGraph(b.passes)

	scheduled, err := schedule(ordered)
	if err != nil {
		rgcore.LogError("render graph build failed during scheduling: %v", err)
		return nil, err
	}

	order := make([]string, len(scheduled))
	for i, n := range scheduled {
		order[i] = n.pass.Name
	}
	rgcore.LogDebug("render graph scheduled order: %v", order)

	physicalPasses := mergePhysicalPasses(scheduled)
	rgcore.LogDebug("render graph merged into %d physical pass(es)", len(physicalPasses))

	return &Renderer{
		BuildID:        uuid.New(),
		Order:          order,
		PhysicalPasses: physicalPasses,
	}, nil
}
