package proof

import "math"

// minTraversalConfidence floors the confidence used for edge costs so that
// cost stays finite for zero-confidence edges.
const minTraversalConfidence = 0.01

type neighbor struct {
	nodeID string
	edgeID string
	cost   float64
}

// adjacencyIndex is an undirected weighted view of the semantic edges.
// Neighbor lists keep edge input order, which keeps traversals
// reproducible.
type adjacencyIndex map[string][]neighbor

// edgeCost maps confidence to a non-negative traversal cost. Higher
// confidence means a cheaper edge.
func edgeCost(confidence float64) float64 {
	return -math.Log(math.Max(confidence, minTraversalConfidence))
}

// buildAdjacency indexes the semantic edges both ways. Edges referencing
// an id absent from the node index are skipped rather than failing the
// call.
func buildAdjacency(nodes map[string]RawNode, edges []RawEdge) adjacencyIndex {
	adj := make(adjacencyIndex, len(nodes))
	for _, edge := range edges {
		if _, ok := nodes[edge.SourceID]; !ok {
			continue
		}
		if _, ok := nodes[edge.TargetID]; !ok {
			continue
		}
		cost := edgeCost(edge.Confidence)
		adj[edge.SourceID] = append(adj[edge.SourceID], neighbor{nodeID: edge.TargetID, edgeID: edge.ID, cost: cost})
		adj[edge.TargetID] = append(adj[edge.TargetID], neighbor{nodeID: edge.SourceID, edgeID: edge.ID, cost: cost})
	}
	return adj
}
