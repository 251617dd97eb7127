package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lattice-kg/lattice/internal/server/middleware"
	"github.com/lattice-kg/lattice/pkg/logger"
	"github.com/lattice-kg/lattice/pkg/proof"
)

// BuildProofHandler builds a proof subgraph for a candidate evidence graph
// and forwards it to the client as JSON.
func BuildProofHandler(c echo.Context) error {
	type buildProofBody struct {
		Graph           proof.GraphData `json:"graph"`
		QueryConceptIDs []string        `json:"query_concept_ids" validate:"required"`
		UsedConceptIDs  []string        `json:"used_concept_ids"`
	}

	type errorResponse struct {
		Message string `json:"message"`
	}

	data := new(buildProofBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}

	cc := c.(*middleware.AppContext)

	graph, err := cc.App.Builder.Build(data.Graph, data.QueryConceptIDs, data.UsedConceptIDs)
	if err != nil {
		if errors.Is(err, proof.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Message: err.Error(),
			})
		}
		logger.Error("Failed to build proof graph", "request_id", cc.RequestID, "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Internal server error",
		})
	}

	logger.Info("[Proof] Graph built",
		"request_id", cc.RequestID,
		"candidate_nodes", len(data.Graph.Nodes),
		"candidate_edges", len(data.Graph.Edges),
		"nodes", graph.Stats.TotalNodes,
		"edges", graph.Stats.TotalEdges,
		"paths", graph.Stats.TotalPaths,
	)

	return c.JSON(http.StatusOK, graph)
}
