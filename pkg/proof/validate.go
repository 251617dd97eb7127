package proof

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrInvalidInput marks a candidate graph that failed schema validation.
var ErrInvalidInput = errors.New("invalid proof input")

// validateInput checks every raw record against the input schema and drops
// weak-link edges. The first malformed record fails the whole call; the
// builder never emits a partially validated graph.
func (b *Builder) validateInput(data GraphData) (map[string]RawNode, []RawEdge, error) {
	nodes := make(map[string]RawNode, len(data.Nodes))
	for i, node := range data.Nodes {
		if err := b.validate.Struct(node); err != nil {
			return nil, nil, fmt.Errorf("%w: node %d: %v", ErrInvalidInput, i, err)
		}
		nodes[node.ID] = node
	}

	weak := mapset.NewThreadUnsafeSet(b.cfg.WeakLinkTypes...)

	semantic := make([]RawEdge, 0, len(data.Edges))
	for i, edge := range data.Edges {
		if err := b.validate.Struct(edge); err != nil {
			return nil, nil, fmt.Errorf("%w: edge %d: %v", ErrInvalidInput, i, err)
		}
		if weak.Contains(edge.RelationType) {
			continue
		}
		semantic = append(semantic, edge)
	}

	return nodes, semantic, nil
}
