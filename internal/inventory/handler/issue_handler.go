package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/service"
)

// IssueHandler exposes the issuance log.
type IssueHandler struct {
	issue *service.IssueService
}

func NewIssueHandler(issue *service.IssueService) *IssueHandler {
	return &IssueHandler{issue: issue}
}

// Record handles POST /issue.
func (h *IssueHandler) Record(c *gin.Context) {
	var req service.RecordIssueRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.issue.RecordIssue(requestContext(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, ev)
}

// List handles GET /issues.
func (h *IssueHandler) List(c *gin.Context) {
	events, err := h.issue.ListAll(requestContext(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, events)
}
