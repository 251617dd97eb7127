package proof

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
)

func TestComputeDepths_MultiSourceLevels(t *testing.T) {
	edges := []RawEdge{
		{ID: "e1", SourceID: "q1", TargetID: "a", RelationType: "supports", Confidence: 0.5},
		{ID: "e2", SourceID: "a", TargetID: "b", RelationType: "supports", Confidence: 0.5},
		{ID: "e3", SourceID: "q2", TargetID: "b", RelationType: "supports", Confidence: 0.5},
	}
	adj := testAdjacency(edges, "q1", "q2", "a", "b")
	selected := mapset.NewThreadUnsafeSet("q1", "q2", "a", "b")

	depths := computeDepths(adj, selected, []string{"q1", "q2"})
	if depths["q1"] != 0 || depths["q2"] != 0 {
		t.Fatalf("expected query nodes at depth 0, got %v", depths)
	}
	if depths["a"] != 1 {
		t.Fatalf("expected depth 1 for a, got %d", depths["a"])
	}
	// b neighbors q2 directly, so the multi-source search reaches it at
	// level 1, not through a at level 2.
	if depths["b"] != 1 {
		t.Fatalf("expected depth 1 for b, got %d", depths["b"])
	}
}

func TestComputeDepths_RespectsSelection(t *testing.T) {
	edges := []RawEdge{
		{ID: "e1", SourceID: "q1", TargetID: "a", RelationType: "supports", Confidence: 0.5},
		{ID: "e2", SourceID: "a", TargetID: "b", RelationType: "supports", Confidence: 0.5},
	}
	adj := testAdjacency(edges, "q1", "a", "b")
	selected := mapset.NewThreadUnsafeSet("q1", "b")

	depths := computeDepths(adj, selected, []string{"q1"})
	if _, ok := depths["a"]; ok {
		t.Fatal("expected unselected node to stay unvisited")
	}
	if _, ok := depths["b"]; ok {
		t.Fatal("expected b to be unreachable without a selected")
	}
}

func TestComputeDepths_NeighborLevelInvariant(t *testing.T) {
	edges := []RawEdge{
		{ID: "e1", SourceID: "q1", TargetID: "a", RelationType: "supports", Confidence: 0.5},
		{ID: "e2", SourceID: "a", TargetID: "b", RelationType: "supports", Confidence: 0.5},
		{ID: "e3", SourceID: "b", TargetID: "c", RelationType: "supports", Confidence: 0.5},
		{ID: "e4", SourceID: "q1", TargetID: "c", RelationType: "supports", Confidence: 0.5},
	}
	adj := testAdjacency(edges, "q1", "a", "b", "c")
	selected := mapset.NewThreadUnsafeSet("q1", "a", "b", "c")

	depths := computeDepths(adj, selected, []string{"q1"})
	for id, depth := range depths {
		for _, nb := range adj[id] {
			nbDepth, ok := depths[nb.nodeID]
			if !ok {
				continue
			}
			if nbDepth > depth+1 {
				t.Fatalf("depth(%s)=%d but depth(%s)=%d", nb.nodeID, nbDepth, id, depth)
			}
		}
	}
}
