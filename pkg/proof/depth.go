package proof

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// computeDepths runs a breadth-first search seeded from every selected
// query concept at once and records the first-visit level per node. The
// search walks the full adjacency index but only enters selected nodes.
// Selected nodes the search never reaches stay absent from the result; the
// assembler gives them the unreachable sentinel.
func computeDepths(adj adjacencyIndex, selected mapset.Set[string], queryIDs []string) map[string]int {
	depths := make(map[string]int)

	seeds := make([]string, 0, len(queryIDs))
	for _, id := range queryIDs {
		if selected.Contains(id) {
			if _, seen := depths[id]; !seen {
				depths[id] = 0
				seeds = append(seeds, id)
			}
		}
	}
	sort.Strings(seeds)

	queue := seeds
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nb := range adj[current] {
			if !selected.Contains(nb.nodeID) {
				continue
			}
			if _, seen := depths[nb.nodeID]; seen {
				continue
			}
			depths[nb.nodeID] = depths[current] + 1
			queue = append(queue, nb.nodeID)
		}
	}

	return depths
}
