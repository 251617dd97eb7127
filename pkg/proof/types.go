package proof

// Node roles, ordered by priority. A node matching several roles is
// classified by the highest one (query > used > bridge > context).
const (
	RoleQuery   = "query"
	RoleUsed    = "used"
	RoleBridge  = "bridge"
	RoleContext = "context"
)

// UnreachableDepth is assigned to selected nodes that the layout BFS never
// reaches from any query concept.
const UnreachableDepth = 99

// RootID is the sentinel id layout code can hang the hierarchy on.
const RootID = "proof_root"

// GraphData is the candidate evidence graph handed in by the retrieval
// pipeline. It is expected to be pre-filtered to the neighborhood of the
// query and answer concepts; the builder never touches the backing store.
type GraphData struct {
	Nodes []RawNode `json:"nodes"`
	Edges []RawEdge `json:"edges"`
}

// RawNode is a candidate concept as delivered by the retrieval pipeline.
type RawNode struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Type          string  `json:"type"`
	Confidence    float64 `json:"confidence" validate:"gte=0,lte=1"`
	MentionCount  int     `json:"mention_count" validate:"gte=0"`
	DocumentCount int     `json:"document_count" validate:"gte=0"`
}

// RawEdge is a candidate typed relation between two concepts. IsUsed marks
// relations the answer generator actually cited; the flag is carried
// through to the output untouched.
type RawEdge struct {
	ID           string   `json:"id" validate:"required"`
	SourceID     string   `json:"source_id" validate:"required"`
	TargetID     string   `json:"target_id" validate:"required"`
	RelationType string   `json:"relation_type" validate:"required"`
	Confidence   float64  `json:"confidence" validate:"gte=0,lte=1"`
	Evidence     []string `json:"evidence"`
	IsUsed       bool     `json:"is_used"`
}

// ProofNode is a selected concept with its role and layout depth.
type ProofNode struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Role          string  `json:"role"`
	Confidence    float64 `json:"confidence"`
	MentionCount  int     `json:"mention_count"`
	DocumentCount int     `json:"document_count"`
	Depth         int     `json:"depth"`
	IsOnPath      bool    `json:"is_on_path"`
}

// ProofEdge is a selected relation. Evidence is capped at the three
// strongest snippets; EvidenceCount keeps the original total.
type ProofEdge struct {
	ID            string   `json:"id"`
	Source        string   `json:"source"`
	Target        string   `json:"target"`
	RelationType  string   `json:"relation_type"`
	Confidence    float64  `json:"confidence"`
	IsUsed        bool     `json:"is_used"`
	IsOnPath      bool     `json:"is_on_path"`
	EvidenceCount int      `json:"evidence_count"`
	Evidence      []string `json:"evidence"`
}

// ProofPath is a minimum-cost route from a query concept to a used
// concept. EdgeIDs[i] connects NodeIDs[i] and NodeIDs[i+1].
// TotalConfidence is the product of the edge confidences along the route.
type ProofPath struct {
	PathID          string   `json:"path_id"`
	FromConcept     string   `json:"from_concept"`
	ToConcept       string   `json:"to_concept"`
	NodeIDs         []string `json:"node_ids"`
	EdgeIDs         []string `json:"edge_ids"`
	TotalConfidence float64  `json:"total_confidence"`
	Length          int      `json:"length"`
}

// ProofStats summarizes the assembled subgraph.
type ProofStats struct {
	TotalNodes   int `json:"total_nodes"`
	TotalEdges   int `json:"total_edges"`
	TotalPaths   int `json:"total_paths"`
	BridgeCount  int `json:"bridge_count"`
	ContextCount int `json:"context_count"`
	MaxDepth     int `json:"max_depth"`
}

// ProofGraph is the assembled proof subgraph. It is built fresh per call
// and never persisted by this package.
type ProofGraph struct {
	Nodes           []ProofNode `json:"nodes"`
	Edges           []ProofEdge `json:"edges"`
	Paths           []ProofPath `json:"paths"`
	RootID          string      `json:"root_id"`
	QueryConceptIDs []string    `json:"query_concept_ids"`
	UsedConceptIDs  []string    `json:"used_concept_ids"`
	Stats           ProofStats  `json:"stats"`
}
