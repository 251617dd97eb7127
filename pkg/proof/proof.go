package proof

import (
	"github.com/lattice-kg/lattice/pkg/logger"

	"github.com/go-playground/validator"
)

// Config holds the selection budgets for a Builder. The values are
// code-level tunables, not a per-call surface; callers that need different
// budgets construct their own Builder.
type Config struct {
	// MaxNodes caps the selected node count. Core nodes (query and used
	// concepts) are always kept, even past the cap.
	MaxNodes int
	// MaxEdges caps the selected edge count. Proof-path edges are always
	// kept, even past the cap.
	MaxEdges int
	// MaxPathsPerUsed caps how many query-to-used paths are kept per used
	// concept.
	MaxPathsPerUsed int
	// MaxTotalPaths caps the number of paths across all used concepts.
	MaxTotalPaths int
	// MaxContextRatio caps context-only nodes at this fraction of MaxNodes.
	MaxContextRatio float64
	// WeakLinkTypes lists relation types that carry no semantic evidence.
	// Edges of these types never appear in the output.
	WeakLinkTypes []string
}

// DefaultConfig returns the budgets used by the API surface.
func DefaultConfig() Config {
	return Config{
		MaxNodes:        40,
		MaxEdges:        60,
		MaxPathsPerUsed: 3,
		MaxTotalPaths:   20,
		MaxContextRatio: 0.25,
		WeakLinkTypes:   []string{"co_occurs_with", "contains", "mentioned_in"},
	}
}

// Builder constructs proof subgraphs. It holds no mutable state between
// calls; a single Builder is safe for concurrent use.
type Builder struct {
	cfg      Config
	validate *validator.Validate
}

// NewBuilder creates a Builder with the given budgets.
func NewBuilder(cfg Config) *Builder {
	return &Builder{
		cfg:      cfg,
		validate: validator.New(),
	}
}

// BuildProofGraph builds a proof subgraph with the default budgets.
func BuildProofGraph(data GraphData, queryConceptIDs, usedConceptIDs []string) (*ProofGraph, error) {
	return NewBuilder(DefaultConfig()).Build(data, queryConceptIDs, usedConceptIDs)
}

// Build turns a candidate evidence graph into a proof subgraph that links
// the query concepts to the concepts the answer actually used.
//
// The stages run strictly in order: validate and drop weak links, index
// adjacency, find cheapest query-to-used paths, cap them, select nodes and
// edges under the budgets, annotate BFS depth, assemble. Identical input
// yields byte-identical output.
//
// A malformed node or edge fails the whole call with an error wrapping
// ErrInvalidInput and an empty, zero-stats graph; no partial results are
// returned.
func (b *Builder) Build(data GraphData, queryConceptIDs, usedConceptIDs []string) (*ProofGraph, error) {
	nodes, semantic, err := b.validateInput(data)
	if err != nil {
		return emptyProofGraph(), err
	}

	adj := buildAdjacency(nodes, semantic)
	paths, pathNodes, pathEdges := b.collectPaths(adj, nodes, queryConceptIDs, usedConceptIDs)
	selected := b.selectNodes(nodes, queryConceptIDs, usedConceptIDs, pathNodes)
	kept := b.selectEdges(semantic, selected, pathEdges)
	depths := computeDepths(adj, selected, queryConceptIDs)

	g := b.assemble(nodes, selected, kept, paths, depths, queryConceptIDs, usedConceptIDs, pathNodes, pathEdges)

	logger.Debug("[Proof] Build completed",
		"nodes", g.Stats.TotalNodes,
		"edges", g.Stats.TotalEdges,
		"paths", g.Stats.TotalPaths,
		"max_depth", g.Stats.MaxDepth,
	)

	return g, nil
}

func emptyProofGraph() *ProofGraph {
	return &ProofGraph{
		Nodes:           []ProofNode{},
		Edges:           []ProofEdge{},
		Paths:           []ProofPath{},
		RootID:          RootID,
		QueryConceptIDs: []string{},
		UsedConceptIDs:  []string{},
	}
}
