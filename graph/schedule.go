package graph

import "math"

// schedule performs the modified Kahn traversal described in spec §4.4: a
// max-heap of currently-independent root nodes, popped highest
// overlap-score first, with newly-independent nodes scored by how many
// already-scheduled nodes they do *not* transitively depend on (the
// non-dependency reading of overlap_score that spec §4.4 and §9 settle
// on — the opposite reading is a known bug in one revision of the
// original source).
func schedule(ordered []*passNode) ([]*passNode, error) {
	var roots rootHeap
	visited := make(map[*passNode]bool, len(ordered))

	for _, n := range ordered {
		if n.isIndependent() {
			roots.Push(n, math.MaxInt)
			visited[n] = true
		}
	}

	result := make([]*passNode, 0, len(ordered))
	for roots.Len() > 0 {
		current := roots.Pop()
		result = append(result, current)

		for _, dep := range current.dependents {
			if !dep.isEdge {
				continue
			}
			dep.isEdge = false

			// Clear the symmetric dependency edge on dep.node, identified
			// by pointer identity of the node we just scheduled.
			for _, back := range dep.node.dependencies {
				if back.node == current {
					back.isEdge = false
				}
			}

			if dep.node.isIndependent() && !visited[dep.node] {
				dependedOn := 0
				for _, scheduled := range result {
					if dep.node.dependsOn(scheduled) {
						dependedOn++
					}
				}
				overlapScore := len(result) - dependedOn
				roots.Push(dep.node, overlapScore)
				visited[dep.node] = true
			}
		}
	}

	for _, n := range ordered {
		if !n.isIndependent() {
			return nil, ErrCyclicalGraph
		}
	}

	return result, nil
}
