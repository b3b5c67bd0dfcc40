package graph

// mergePhysicalPasses walks the scheduled order and greedily groups
// consecutive passes into physical passes (spec §4.5). For each pass P,
// every existing physical pass is considered as a merge candidate; among
// candidates the one with the highest merge score is chosen. If none
// qualify, P starts a new physical pass.
func mergePhysicalPasses(order []*passNode) []*PhysicalPass {
	var clusters []*physicalCluster

	for _, p := range order {
		var best *physicalCluster
		bestScore := -1

		for _, f := range clusters {
			if !isMergeCandidate(p, f) {
				continue
			}
			if score := mergeScore(p, f); score > bestScore {
				best = f
				bestScore = score
			}
		}

		if best == nil {
			best = newPhysicalCluster()
			clusters = append(clusters, best)
		}
		best.addSubpass(p)
	}

	result := make([]*PhysicalPass, 0, len(clusters))
	for _, f := range clusters {
		result = append(result, f.freeze())
	}
	return result
}

// physicalCluster is the mutable, build-time counterpart of PhysicalPass.
//
// externalSrc tracks, by source pass only, whether some dependency on
// that source has already been hoisted into an external dependency —
// this is what merge scoring matches on (spec §4.5 talks about a
// dependency's "source", never its attachment, when deciding whether F
// already has a dependency "in the expected place"); candidacy does not
// consult it. A single
// producer pass feeding several attachments into the same consumer
// collapses to one synchronisation point either way. externalSeen is
// a finer-grained (source, attachment) set so the emitted
// ExternalDependency list still carries one entry per distinct
// attachment, which the GPU executor needs for layout transitions.
type physicalCluster struct {
	subpasses   []*passNode
	subpassSet  map[*passNode]bool
	externalDeps []*edge
	externalSrc  map[*passNode]bool
	externalSeen map[edgeKey]bool
}

type edgeKey struct {
	node       *passNode
	attachment *Attachment
}

func newPhysicalCluster() *physicalCluster {
	return &physicalCluster{
		subpassSet:   make(map[*passNode]bool),
		externalSrc:  make(map[*passNode]bool),
		externalSeen: make(map[edgeKey]bool),
	}
}

func (f *physicalCluster) addSubpass(p *passNode) {
	f.subpasses = append(f.subpasses, p)
	f.subpassSet[p] = true

	for _, dep := range p.dependencies {
		if !dep.usage.RequiresExternalSync() {
			continue
		}
		f.externalSrc[dep.node] = true

		key := edgeKey{dep.node, dep.attachment}
		if f.externalSeen[key] {
			continue
		}
		f.externalSeen[key] = true
		f.externalDeps = append(f.externalDeps, dep)
	}
}

func (f *physicalCluster) freeze() *PhysicalPass {
	pp := &PhysicalPass{
		Subpasses:            make([]Subpass, 0, len(f.subpasses)),
		ExternalDependencies: make([]ExternalDependency, 0, len(f.externalDeps)),
	}
	for _, s := range f.subpasses {
		pp.Subpasses = append(pp.Subpasses, Subpass{
			PassName: s.pass.Name,
			Usages:   subpassUsages(s.pass),
		})
	}
	for _, e := range f.externalDeps {
		pp.ExternalDependencies = append(pp.ExternalDependencies, ExternalDependency{
			SourcePassName: e.node.pass.Name,
			AttachmentName: e.attachment.Name,
			Usage:          e.usage,
		})
	}
	return pp
}

// isMergeCandidate reports whether every dependency of p can be
// satisfied by cluster f: internal (colour-only) dependencies must
// already be a subpass of f; external-sync dependencies must neither be
// a subpass of f nor be transitively depended on by any subpass of f.
func isMergeCandidate(p *passNode, f *physicalCluster) bool {
	for _, dep := range p.dependencies {
		if dep.usage.RequiresExternalSync() {
			if f.subpassSet[dep.node] {
				return false
			}
			for _, s := range f.subpasses {
				if s.dependsOn(dep.node) {
					return false
				}
			}
		} else if !f.subpassSet[dep.node] {
			return false
		}
	}
	return true
}

// mergeScore counts p's dependencies whose source is already "in the
// expected place" for f: an internal dependency whose source is a
// subpass of f, or an external dependency whose source is already one
// of f's recorded external dependencies.
func mergeScore(p *passNode, f *physicalCluster) int {
	score := 0
	for _, dep := range p.dependencies {
		if dep.usage.RequiresExternalSync() {
			if f.externalSrc[dep.node] {
				score++
			}
		} else if f.subpassSet[dep.node] {
			score++
		}
	}
	return score
}
