package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/phylo-app/phylo/internal/models"
)

// RelationHandler serves kinship endpoints for one tree.
type RelationHandler struct {
	svc RelationRepository
	log *logrus.Logger
}

// NewRelationHandler creates a RelationHandler with the given service and logger.
func NewRelationHandler(svc RelationRepository, log *logrus.Logger) *RelationHandler {
	return &RelationHandler{svc: svc, log: log}
}

// Between handles GET /api/v1/trees/:treeId/relations/between?from=&to=.
func (h *RelationHandler) Between(c *gin.Context) {
	q := models.RelationQuery{
		TreeID: c.Param("treeId"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}

	res, err := h.svc.Between(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, h.log, err, "computing relationship")

		return
	}

	c.JSON(http.StatusOK, res)
}

// From handles GET /api/v1/trees/:treeId/relations/from/:memberId.
func (h *RelationHandler) From(c *gin.Context) {
	list, err := h.svc.RelationsFrom(c.Request.Context(), c.Param("treeId"), c.Param("memberId"))
	if err != nil {
		respondServiceError(c, h.log, err, "computing relations from member")

		return
	}

	c.JSON(http.StatusOK, list)
}

// List handles GET /api/v1/trees/:treeId/relationships.
func (h *RelationHandler) List(c *gin.Context) {
	list, err := h.svc.ListRelationships(c.Request.Context(), c.Param("treeId"))
	if err != nil {
		respondServiceError(c, h.log, err, "listing relationships")

		return
	}

	c.JSON(http.StatusOK, list)
}

// Export handles GET /api/v1/trees/:treeId/snapshot. ?format=yaml returns the
// same document the CLI reads for offline queries.
func (h *RelationHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "yaml" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "format must be json or yaml")

		return
	}

	snap, err := h.svc.ExportSnapshot(c.Request.Context(), c.Param("treeId"))
	if err != nil {
		respondServiceError(c, h.log, err, "exporting tree")

		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, snap)

		return
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		h.log.WithError(err).Error("encoding snapshot")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Data(http.StatusOK, "application/yaml", out)
}
