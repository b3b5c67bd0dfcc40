package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// externalDepsFor returns the ExternalDependencies of the physical pass
// containing passName, or nil if passName isn't found.
func externalDepsFor(r *Renderer, passName string) []ExternalDependency {
	for _, pp := range r.PhysicalPasses {
		for _, s := range pp.Subpasses {
			if s.PassName == passName {
				return pp.ExternalDependencies
			}
		}
	}
	return nil
}

func TestMerge_AllAttachmentsFromSameSourcePreserved(t *testing.T) {
	// lighting depends on gbuffer through three distinct attachments
	// (albedo, normal, depth), all external-sync. The merger must not
	// collapse them into a single ExternalDependency entry just because
	// they share a source pass.
	b := buildGBufferScenario()
	r, err := b.Build()
	require.NoError(t, err)

	deps := externalDepsFor(r, "lighting")
	require.NotEmpty(t, deps, "lighting's physical pass should record external dependencies")

	seen := make(map[string]bool)
	for _, d := range deps {
		if d.SourcePassName == "gbuffer" {
			seen[d.AttachmentName] = true
		}
	}
	assert.True(t, seen["albedo"], "albedo dependency on gbuffer should be preserved")
	assert.True(t, seen["normal"], "normal dependency on gbuffer should be preserved")
	assert.True(t, seen["depth"], "depth dependency on gbuffer should be preserved")
}

func TestMerge_UnrelatedPassesNeverMerge(t *testing.T) {
	// Two passes with no dependency edge between them are never merge
	// candidates for each other (isMergeCandidate vacuously accepts an
	// empty dependency list, but the scheduler never places an
	// unconnected pass ahead of one it could be merged with here), so
	// each keeps its own physical pass.
	b := NewBuilder()
	x := b.AddAttachment("x", FormatR8G8B8A8Unorm, 1)
	b.AddPass("producer").AddColorOutput(x)
	b.AddPass("consumer").AddColorOutput(b.BackbufferAttachment())

	r, err := b.Build()
	require.NoError(t, err)
	require.Len(t, r.PhysicalPasses, 2)
}

func TestMerge_ExternalDependencyUsageAlwaysRequiresSync(t *testing.T) {
	b := buildGBufferScenario()
	r, err := b.Build()
	require.NoError(t, err)

	for _, pp := range r.PhysicalPasses {
		for _, dep := range pp.ExternalDependencies {
			assert.True(t, dep.Usage.RequiresExternalSync())
		}
	}
}

func TestMerge_NoSubpassDuplicatedAcrossPhysicalPasses(t *testing.T) {
	b := buildGBufferScenario()
	r, err := b.Build()
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, pp := range r.PhysicalPasses {
		for _, s := range pp.Subpasses {
			seen[s.PassName]++
		}
	}
	for name, count := range seen {
		assert.Equalf(t, 1, count, "pass %q should appear in exactly one physical pass, got %d", name, count)
	}
}
