package proof

import "container/heap"

// pathResult is the cheapest route found between two concepts.
// edgeIDs[i] connects nodeIDs[i] and nodeIDs[i+1].
type pathResult struct {
	from    string
	to      string
	nodeIDs []string
	edgeIDs []string
	cost    float64
}

type frontierEntry struct {
	cost    float64
	nodeID  string
	nodeIDs []string
	edgeIDs []string
}

// frontier is the Dijkstra priority queue. Ties on cost break by smaller
// next-node id, then by shorter path, so repeated runs and independent
// implementations expand candidates in the same order.
type frontier []*frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	if f[i].nodeID != f[j].nodeID {
		return f[i].nodeID < f[j].nodeID
	}
	return len(f[i].nodeIDs) < len(f[j].nodeIDs)
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierEntry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return entry
}

// shortestPath runs a visited-set Dijkstra from start to target over the
// adjacency index. It reports false when target is unreachable. A search
// from a node to itself yields a zero-length, zero-cost path.
func shortestPath(adj adjacencyIndex, start, target string) (*pathResult, bool) {
	if start == target {
		return &pathResult{from: start, to: target, nodeIDs: []string{start}, edgeIDs: []string{}}, true
	}

	visited := make(map[string]struct{})
	queue := &frontier{{cost: 0, nodeID: start, nodeIDs: []string{start}, edgeIDs: []string{}}}
	heap.Init(queue)

	for queue.Len() > 0 {
		entry := heap.Pop(queue).(*frontierEntry)
		if _, seen := visited[entry.nodeID]; seen {
			continue
		}
		visited[entry.nodeID] = struct{}{}

		if entry.nodeID == target {
			return &pathResult{
				from:    start,
				to:      target,
				nodeIDs: entry.nodeIDs,
				edgeIDs: entry.edgeIDs,
				cost:    entry.cost,
			}, true
		}

		for _, nb := range adj[entry.nodeID] {
			if _, seen := visited[nb.nodeID]; seen {
				continue
			}
			nodeIDs := make([]string, len(entry.nodeIDs), len(entry.nodeIDs)+1)
			copy(nodeIDs, entry.nodeIDs)
			edgeIDs := make([]string, len(entry.edgeIDs), len(entry.edgeIDs)+1)
			copy(edgeIDs, entry.edgeIDs)
			heap.Push(queue, &frontierEntry{
				cost:    entry.cost + nb.cost,
				nodeID:  nb.nodeID,
				nodeIDs: append(nodeIDs, nb.nodeID),
				edgeIDs: append(edgeIDs, nb.edgeID),
			})
		}
	}

	return nil, false
}
