package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/office/service"
)

// EnrollmentHandler exposes enrollment request CRUD and the status decision.
type EnrollmentHandler struct {
	enrollment *service.EnrollmentService
}

func NewEnrollmentHandler(enrollment *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollment: enrollment}
}

func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req service.CreateEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollment.Create(requestContext(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, enrollment)
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	requests, err := h.enrollment.List(requestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, requests)
}

func (h *EnrollmentHandler) Get(c *gin.Context) {
	enrollment, err := h.enrollment.Get(requestContext(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, enrollment)
}

func (h *EnrollmentHandler) Update(c *gin.Context) {
	var req service.UpdateEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollment.Update(requestContext(c), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, enrollment)
}

// Decide handles PUT /enrollments/:id/status.
func (h *EnrollmentHandler) Decide(c *gin.Context) {
	var req service.DecideEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollment.Decide(requestContext(c), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, enrollment)
}

func (h *EnrollmentHandler) Delete(c *gin.Context) {
	if err := h.enrollment.Delete(requestContext(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"id": c.Param("id")})
}
