package graph

import "github.com/google/uuid"

// UsageRecord binds an attachment name to the usage a subpass makes of
// it, for the GPU-executor collaborator to build native attachment
// references from (spec §6).
type UsageRecord struct {
	AttachmentName string
	Usage          UsageFlags
}

// Subpass is one pass located inside a PhysicalPass, along with its own
// attachment usage records in declaration order (outputs, then inputs).
type Subpass struct {
	PassName string
	Usages   []UsageRecord
}

// ExternalDependency is a cross-physical-pass edge that requires an
// explicit synchronisation barrier: induced only by depth-stencil or
// input-attachment usages (spec §4.5, §GLOSSARY).
type ExternalDependency struct {
	SourcePassName string
	AttachmentName string
	Usage          UsageFlags
}

// PhysicalPass is a cluster of one or more subpasses executed as a
// single native render pass.
type PhysicalPass struct {
	Subpasses            []Subpass
	ExternalDependencies []ExternalDependency
}

// Renderer is the frozen artifact produced by Builder.Build: the
// scheduled order and physical-pass grouping, read-only from here on.
// It is consumed by the GPU-command collaborator to create native render
// pass objects and record command buffers; that collaborator is out of
// scope for this package (spec §1).
type Renderer struct {
	BuildID uuid.UUID

	// Order is the scheduled pass order, by name, purely for
	// introspection/logging: every dependency source of a pass appears
	// strictly earlier in this slice (spec §8 property 1).
	Order []string

	PhysicalPasses []*PhysicalPass
}

// subpassUsages derives a pass's own attachment usage records, in
// declaration order: colour outputs, depth output, inputs, depth input.
func subpassUsages(p *Pass) []UsageRecord {
	usages := make([]UsageRecord, 0, len(p.ColorOutputs)+len(p.Inputs)+2)
	for _, a := range p.ColorOutputs {
		usages = append(usages, UsageRecord{AttachmentName: a.Name, Usage: UsageColorAttachment})
	}
	if p.DepthOutput != nil {
		usages = append(usages, UsageRecord{AttachmentName: p.DepthOutput.Name, Usage: UsageDepthStencilAttachment})
	}
	for _, a := range p.Inputs {
		usages = append(usages, UsageRecord{AttachmentName: a.Name, Usage: UsageInputAttachment})
	}
	if p.DepthInput != nil {
		usages = append(usages, UsageRecord{AttachmentName: p.DepthInput.Name, Usage: UsageDepthStencilAttachment})
	}
	return usages
}
