package graph

// edge is a scheduler-scratch dependency edge between two pass nodes,
// backed by exactly one shared attachment. isEdge is mutable scratch
// used only by the scheduler (spec §9, "mutable-during-scheduling
// scratch on a graph that looks immutable").
type edge struct {
	node       *passNode
	attachment *Attachment
	usage      UsageFlags
	isEdge     bool
}

// passNode is the scheduler-local counterpart of a Pass: the user-facing
// description stays pure, and every piece of scheduling scratch lives
// here instead (spec §9).
type passNode struct {
	pass         *Pass
	dependencies []*edge
	dependents   []*edge

	reachMemo map[*passNode]bool
}

func newPassNode(p *Pass) *passNode {
	return &passNode{
		pass:      p,
		reachMemo: make(map[*passNode]bool),
	}
}

// isIndependent reports whether every incoming dependency edge has been
// cleared by the scheduler (or there were none to begin with).
func (n *passNode) isIndependent() bool {
	for _, e := range n.dependencies {
		if e.isEdge {
			return false
		}
	}
	return true
}

// dependsOn reports whether n transitively depends on other, n included.
// The dependency edge list is immutable after construction, so results
// are safe to memoize per spec §5's "cache reachability if the graph
// exceeds a few dozen passes" (the walk is otherwise O(V+E) per call,
// O((V+E)*V) across a full schedule).
func (n *passNode) dependsOn(other *passNode) bool {
	if n == other {
		return true
	}
	if cached, ok := n.reachMemo[other]; ok {
		return cached
	}
	result := false
	for _, e := range n.dependencies {
		if e.node.dependsOn(other) {
			result = true
			break
		}
	}
	n.reachMemo[other] = result
	return result
}

// buildDependencyGraph materialises the implicit write->read edges
// described in spec §4.3 into pass nodes. passes must already be
// name-unique (validate runs first).
func buildDependencyGraph(passes []*Pass) (map[string]*passNode, []*passNode) {
	nodes := make(map[string]*passNode, len(passes))
	ordered := make([]*passNode, len(passes))
	for i, p := range passes {
		n := newPassNode(p)
		nodes[p.Name] = n
		ordered[i] = n
	}

	for i, p := range passes {
		n := ordered[i]

		for _, in := range p.Inputs {
			for _, w := range in.Writers {
				n.dependencies = append(n.dependencies, &edge{
					node:       nodes[w.Name],
					attachment: in,
					usage:      UsageInputAttachment,
					isEdge:     true,
				})
			}
		}
		if p.DepthInput != nil {
			for _, w := range p.DepthInput.Writers {
				n.dependencies = append(n.dependencies, &edge{
					node:       nodes[w.Name],
					attachment: p.DepthInput,
					usage:      UsageDepthStencilAttachment,
					isEdge:     true,
				})
			}
		}

		for _, out := range p.ColorOutputs {
			for _, r := range out.Readers {
				n.dependents = append(n.dependents, &edge{
					node:       nodes[r.Name],
					attachment: out,
					usage:      usageForReader(r, out),
					isEdge:     true,
				})
			}
		}
		if p.DepthOutput != nil {
			for _, r := range p.DepthOutput.Readers {
				n.dependents = append(n.dependents, &edge{
					node:       nodes[r.Name],
					attachment: p.DepthOutput,
					usage:      usageForReader(r, p.DepthOutput),
					isEdge:     true,
				})
			}
		}
	}

	return nodes, ordered
}

// usageForReader reports how reader r consumes attachment a: as its
// depth/stencil input if a sits in that slot, otherwise as a sampled
// input attachment. Both are the only ways an attachment ends up in a
// pass's reader set.
func usageForReader(r *Pass, a *Attachment) UsageFlags {
	if r.DepthInput == a {
		return UsageDepthStencilAttachment
	}
	return UsageInputAttachment
}
