package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/office/service"
)

// EventHandler exposes calendar event CRUD.
type EventHandler struct {
	event *service.EventService
}

func NewEventHandler(event *service.EventService) *EventHandler {
	return &EventHandler{event: event}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.event.Create(requestContext(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, ev)
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.event.List(requestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	ev, err := h.event.Get(requestContext(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, ev)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req service.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.event.Update(requestContext(c), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, ev)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.event.Delete(requestContext(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"id": c.Param("id")})
}
