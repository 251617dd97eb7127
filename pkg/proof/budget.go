package proof

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// byConfidenceDesc orders candidate ids by descending confidence, breaking
// ties by ascending id so selection never depends on map iteration order.
func byConfidenceDesc(nodes map[string]RawNode, ids []string) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		ci, cj := nodes[sorted[i]].Confidence, nodes[sorted[j]].Confidence
		if ci != cj {
			return ci > cj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// selectNodes picks the node set under the node budget.
//
// Core nodes (query and used concepts present in the graph) are mandatory
// and kept even when they alone exceed MaxNodes. Bridge nodes from the
// retained paths fill the remaining budget, highest confidence first.
// Whatever budget is left after that is filled with context nodes, and
// context-only nodes are then trimmed to MaxContextRatio of the budget.
func (b *Builder) selectNodes(
	nodes map[string]RawNode,
	queryIDs []string,
	usedIDs []string,
	pathNodes mapset.Set[string],
) mapset.Set[string] {
	core := mapset.NewThreadUnsafeSet[string]()
	for _, id := range append(append([]string{}, queryIDs...), usedIDs...) {
		if _, ok := nodes[id]; ok {
			core.Add(id)
		}
	}

	selected := core.Clone()

	bridges := make([]string, 0, pathNodes.Cardinality())
	for _, id := range pathNodes.ToSlice() {
		if !core.Contains(id) {
			bridges = append(bridges, id)
		}
	}
	remaining := b.cfg.MaxNodes - selected.Cardinality()
	if remaining > 0 {
		if len(bridges) > remaining {
			bridges = byConfidenceDesc(nodes, bridges)[:remaining]
		}
		selected.Append(bridges...)
	}

	remaining = b.cfg.MaxNodes - selected.Cardinality()
	if remaining > 0 {
		candidates := make([]string, 0, len(nodes))
		for id := range nodes {
			if !selected.Contains(id) {
				candidates = append(candidates, id)
			}
		}
		candidates = byConfidenceDesc(nodes, candidates)
		if len(candidates) > remaining {
			candidates = candidates[:remaining]
		}
		selected.Append(candidates...)
	}

	// Trim context-only nodes to the ratio cap. Core nodes and bridges on
	// retained paths survive this step.
	contextOnly := make([]string, 0)
	for _, id := range selected.ToSlice() {
		if !core.Contains(id) && !pathNodes.Contains(id) {
			contextOnly = append(contextOnly, id)
		}
	}
	contextCap := int(b.cfg.MaxContextRatio * float64(b.cfg.MaxNodes))
	if len(contextOnly) > contextCap {
		for _, id := range byConfidenceDesc(nodes, contextOnly)[contextCap:] {
			selected.Remove(id)
		}
	}

	return selected
}

// selectEdges picks the edge set under the edge budget.
//
// Every edge on a retained path is kept first, regardless of MaxEdges:
// dropping one would leave a proof path without its evidence, so path
// edges may push the total past the budget. Remaining slots are filled
// with edges between selected nodes, highest confidence first.
func (b *Builder) selectEdges(
	edges []RawEdge,
	selected mapset.Set[string],
	pathEdges mapset.Set[string],
) []RawEdge {
	kept := make([]RawEdge, 0, b.cfg.MaxEdges)
	candidates := make([]RawEdge, 0, len(edges))

	for _, edge := range edges {
		if pathEdges.Contains(edge.ID) {
			kept = append(kept, edge)
			continue
		}
		if selected.Contains(edge.SourceID) && selected.Contains(edge.TargetID) {
			candidates = append(candidates, edge)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, edge := range candidates {
		if len(kept) >= b.cfg.MaxEdges {
			break
		}
		kept = append(kept, edge)
	}

	return kept
}
