package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/service"
)

// SummaryHandler exposes the on-demand issuance aggregations.
type SummaryHandler struct {
	summary *service.SummaryService
}

func NewSummaryHandler(summary *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summary: summary}
}

// Basic handles GET /summary-issue.
func (h *SummaryHandler) Basic(c *gin.Context) {
	rows, err := h.summary.Summarize(requestContext(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}

// Detailed handles GET /detailed-summary-issue.
func (h *SummaryHandler) Detailed(c *gin.Context) {
	rows, err := h.summary.SummarizeDetailed(requestContext(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}
