package proof

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

const maxEvidencePerEdge = 3

// assemble builds the output structure from the selection results.
//
// Output ordering is part of the contract: nodes sort by (depth, id),
// edges by (on-path first, confidence descending, id), paths keep their
// collection order. Identical input therefore serializes to identical
// bytes.
func (b *Builder) assemble(
	nodes map[string]RawNode,
	selected mapset.Set[string],
	kept []RawEdge,
	paths []ProofPath,
	depths map[string]int,
	queryIDs []string,
	usedIDs []string,
	pathNodes mapset.Set[string],
	pathEdges mapset.Set[string],
) *ProofGraph {
	querySet := mapset.NewThreadUnsafeSet(queryIDs...)
	usedSet := mapset.NewThreadUnsafeSet(usedIDs...)

	outNodes := make([]ProofNode, 0, selected.Cardinality())
	bridgeCount := 0
	contextCount := 0
	maxDepth := 0
	for _, id := range selected.ToSlice() {
		raw := nodes[id]

		role := RoleContext
		switch {
		case querySet.Contains(id):
			role = RoleQuery
		case usedSet.Contains(id):
			role = RoleUsed
		case pathNodes.Contains(id):
			role = RoleBridge
		}
		switch role {
		case RoleBridge:
			bridgeCount++
		case RoleContext:
			contextCount++
		}

		depth, reached := depths[id]
		if !reached {
			depth = UnreachableDepth
		} else if depth > maxDepth {
			maxDepth = depth
		}

		outNodes = append(outNodes, ProofNode{
			ID:            raw.ID,
			Name:          raw.Name,
			Type:          raw.Type,
			Role:          role,
			Confidence:    raw.Confidence,
			MentionCount:  raw.MentionCount,
			DocumentCount: raw.DocumentCount,
			Depth:         depth,
			IsOnPath:      pathNodes.Contains(id),
		})
	}
	sort.Slice(outNodes, func(i, j int) bool {
		if outNodes[i].Depth != outNodes[j].Depth {
			return outNodes[i].Depth < outNodes[j].Depth
		}
		return outNodes[i].ID < outNodes[j].ID
	})

	outEdges := make([]ProofEdge, 0, len(kept))
	for _, edge := range kept {
		evidence := edge.Evidence
		if len(evidence) > maxEvidencePerEdge {
			evidence = evidence[:maxEvidencePerEdge]
		}
		outEdges = append(outEdges, ProofEdge{
			ID:            edge.ID,
			Source:        edge.SourceID,
			Target:        edge.TargetID,
			RelationType:  edge.RelationType,
			Confidence:    edge.Confidence,
			IsUsed:        edge.IsUsed,
			IsOnPath:      pathEdges.Contains(edge.ID),
			EvidenceCount: len(edge.Evidence),
			Evidence:      evidence,
		})
	}
	sort.Slice(outEdges, func(i, j int) bool {
		if outEdges[i].IsOnPath != outEdges[j].IsOnPath {
			return outEdges[i].IsOnPath
		}
		if outEdges[i].Confidence != outEdges[j].Confidence {
			return outEdges[i].Confidence > outEdges[j].Confidence
		}
		return outEdges[i].ID < outEdges[j].ID
	})

	return &ProofGraph{
		Nodes:           outNodes,
		Edges:           outEdges,
		Paths:           paths,
		RootID:          RootID,
		QueryConceptIDs: append([]string{}, queryIDs...),
		UsedConceptIDs:  append([]string{}, usedIDs...),
		Stats: ProofStats{
			TotalNodes:   len(outNodes),
			TotalEdges:   len(outEdges),
			TotalPaths:   len(paths),
			BridgeCount:  bridgeCount,
			ContextCount: contextCount,
			MaxDepth:     maxDepth,
		},
	}
}
