package proof

import (
	"fmt"
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// collectPaths finds the cheapest paths from the query concepts to every
// used concept and caps them per used concept and globally.
//
// Used concepts are processed in input order; once MaxTotalPaths paths are
// collected, no further used concept contributes any. A used concept that
// is itself a query concept, or that no query concept can reach, simply
// yields no paths.
func (b *Builder) collectPaths(
	adj adjacencyIndex,
	nodes map[string]RawNode,
	queryIDs []string,
	usedIDs []string,
) ([]ProofPath, mapset.Set[string], mapset.Set[string]) {
	querySet := mapset.NewThreadUnsafeSet(queryIDs...)
	pathNodes := mapset.NewThreadUnsafeSet[string]()
	pathEdges := mapset.NewThreadUnsafeSet[string]()

	paths := make([]ProofPath, 0, b.cfg.MaxTotalPaths)

	for _, usedID := range usedIDs {
		if len(paths) >= b.cfg.MaxTotalPaths {
			break
		}
		if querySet.Contains(usedID) {
			continue
		}
		if _, ok := nodes[usedID]; !ok {
			continue
		}

		results := make([]*pathResult, 0, len(queryIDs))
		for _, queryID := range queryIDs {
			if _, ok := nodes[queryID]; !ok {
				continue
			}
			if result, ok := shortestPath(adj, queryID, usedID); ok {
				results = append(results, result)
			}
		}

		sort.SliceStable(results, func(i, j int) bool {
			return results[i].cost < results[j].cost
		})

		for i, result := range results {
			if i >= b.cfg.MaxPathsPerUsed || len(paths) >= b.cfg.MaxTotalPaths {
				break
			}
			paths = append(paths, ProofPath{
				PathID:          fmt.Sprintf("path_%d", len(paths)),
				FromConcept:     result.from,
				ToConcept:       result.to,
				NodeIDs:         result.nodeIDs,
				EdgeIDs:         result.edgeIDs,
				TotalConfidence: math.Exp(-result.cost),
				Length:          len(result.edgeIDs),
			})
			pathNodes.Append(result.nodeIDs...)
			pathEdges.Append(result.edgeIDs...)
		}
	}

	return paths, pathNodes, pathEdges
}
