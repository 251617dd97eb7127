package proof

import (
	"math"
	"reflect"
	"testing"
)

func testAdjacency(edges []RawEdge, nodeIDs ...string) adjacencyIndex {
	nodes := make(map[string]RawNode, len(nodeIDs))
	for _, id := range nodeIDs {
		nodes[id] = RawNode{ID: id, Name: id, Confidence: 0.5}
	}
	return buildAdjacency(nodes, edges)
}

func TestEdgeCost_MonotoneInConfidence(t *testing.T) {
	if edgeCost(0.9) >= edgeCost(0.5) {
		t.Fatalf("expected cost(0.9) < cost(0.5), got %f >= %f", edgeCost(0.9), edgeCost(0.5))
	}
	if edgeCost(1.0) != 0 {
		t.Fatalf("expected zero cost at full confidence, got %f", edgeCost(1.0))
	}
	if edgeCost(0) != edgeCost(0.01) {
		t.Fatalf("expected floored cost for zero confidence, got %f and %f", edgeCost(0), edgeCost(0.01))
	}
	if edgeCost(0.01) < 0 || math.IsInf(edgeCost(0), 1) {
		t.Fatal("expected finite non-negative costs")
	}
}

func TestBuildAdjacency_SkipsDanglingEdges(t *testing.T) {
	nodes := map[string]RawNode{
		"a": {ID: "a", Name: "A", Confidence: 0.5},
		"b": {ID: "b", Name: "B", Confidence: 0.5},
	}
	edges := []RawEdge{
		{ID: "e1", SourceID: "a", TargetID: "b", RelationType: "supports", Confidence: 0.5},
		{ID: "e2", SourceID: "a", TargetID: "ghost", RelationType: "supports", Confidence: 0.5},
		{ID: "e3", SourceID: "ghost", TargetID: "b", RelationType: "supports", Confidence: 0.5},
	}

	adj := buildAdjacency(nodes, edges)
	if len(adj["a"]) != 1 || adj["a"][0].edgeID != "e1" {
		t.Fatalf("expected a to have only e1, got %v", adj["a"])
	}
	if len(adj["b"]) != 1 || adj["b"][0].edgeID != "e1" {
		t.Fatalf("expected b to have only e1, got %v", adj["b"])
	}
	if _, ok := adj["ghost"]; ok {
		t.Fatal("expected no adjacency for unknown node")
	}
}

func TestShortestPath_PrefersHighConfidenceRoute(t *testing.T) {
	// start -> mid1 -> target is cheap, start -> mid2 -> target is expensive.
	adj := testAdjacency([]RawEdge{
		{ID: "e1", SourceID: "start", TargetID: "mid1", RelationType: "supports", Confidence: 0.9},
		{ID: "e2", SourceID: "mid1", TargetID: "target", RelationType: "supports", Confidence: 0.9},
		{ID: "e3", SourceID: "start", TargetID: "mid2", RelationType: "supports", Confidence: 0.3},
		{ID: "e4", SourceID: "mid2", TargetID: "target", RelationType: "supports", Confidence: 0.3},
	}, "start", "mid1", "mid2", "target")

	result, ok := shortestPath(adj, "start", "target")
	if !ok {
		t.Fatal("expected a path")
	}
	if !reflect.DeepEqual(result.nodeIDs, []string{"start", "mid1", "target"}) {
		t.Fatalf("unexpected node sequence %v", result.nodeIDs)
	}
	if !reflect.DeepEqual(result.edgeIDs, []string{"e1", "e2"}) {
		t.Fatalf("unexpected edge sequence %v", result.edgeIDs)
	}
	wantCost := edgeCost(0.9) * 2
	if math.Abs(result.cost-wantCost) > 1e-12 {
		t.Fatalf("expected cost %f, got %f", wantCost, result.cost)
	}
}

func TestShortestPath_TieBreaksOnSmallerNodeID(t *testing.T) {
	// Two routes with identical cost; the one through the
	// lexicographically smaller intermediate must win regardless of edge
	// input order.
	edges := []RawEdge{
		{ID: "e1", SourceID: "start", TargetID: "zzz", RelationType: "supports", Confidence: 0.5},
		{ID: "e2", SourceID: "zzz", TargetID: "target", RelationType: "supports", Confidence: 0.5},
		{ID: "e3", SourceID: "start", TargetID: "aaa", RelationType: "supports", Confidence: 0.5},
		{ID: "e4", SourceID: "aaa", TargetID: "target", RelationType: "supports", Confidence: 0.5},
	}
	adj := testAdjacency(edges, "start", "aaa", "zzz", "target")

	result, ok := shortestPath(adj, "start", "target")
	if !ok {
		t.Fatal("expected a path")
	}
	if !reflect.DeepEqual(result.nodeIDs, []string{"start", "aaa", "target"}) {
		t.Fatalf("expected route through aaa, got %v", result.nodeIDs)
	}
}

func TestShortestPath_TrivialWhenStartEqualsTarget(t *testing.T) {
	adj := testAdjacency(nil, "a")

	result, ok := shortestPath(adj, "a", "a")
	if !ok {
		t.Fatal("expected trivial path")
	}
	if result.cost != 0 || len(result.edgeIDs) != 0 {
		t.Fatalf("expected zero-cost zero-length path, got %+v", result)
	}
	if !reflect.DeepEqual(result.nodeIDs, []string{"a"}) {
		t.Fatalf("expected single-node sequence, got %v", result.nodeIDs)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	adj := testAdjacency([]RawEdge{
		{ID: "e1", SourceID: "a", TargetID: "b", RelationType: "supports", Confidence: 0.5},
	}, "a", "b", "island")

	if _, ok := shortestPath(adj, "a", "island"); ok {
		t.Fatal("expected no path to disconnected node")
	}
}
