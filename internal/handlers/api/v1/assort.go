package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/metrics"
	"github.com/sptforge/questforge/internal/services/assort"
	"github.com/sptforge/questforge/internal/services/conversion"
)

// buildAssortRequest carries the trader and the editing forms to generate
// a catalog from.
type buildAssortRequest struct {
	Trader string                      `json:"trader"`
	Items  []conversion.AssortItemForm `json:"items"`
	Parts  []conversion.AssortPartForm `json:"parts"`
}

func (h *Handler) buildAssort(c *gin.Context) {
	var req buildAssortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.assorts.Build(c.Request.Context(), &assort.BuildInput{
		Trader: req.Trader,
		Items:  req.Items,
		Parts:  req.Parts,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.DocumentsExported.WithLabelValues("assort").Inc()
	respondFile(c, output.Filename, output.Data)
}

func (h *Handler) parseAssort(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request body"))
		return
	}

	output, err := h.assorts.Parse(c.Request.Context(), &assort.ParseInput{Data: data})
	if err != nil {
		metrics.DocumentsImported.WithLabelValues("assort", "error").Inc()
		respondError(c, err)
		return
	}
	metrics.DocumentsImported.WithLabelValues("assort", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"items": output.Items,
		"parts": output.Parts,
	})
}
