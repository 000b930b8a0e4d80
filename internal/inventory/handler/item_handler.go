package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/service"
)

// ItemHandler exposes catalog CRUD plus the reconciliation trigger.
type ItemHandler struct {
	catalog *service.CatalogService
}

func NewItemHandler(catalog *service.CatalogService) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.AddItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.catalog.AddItem(requestContext(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, item)
}

// List handles GET /items.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.catalog.ListItems(requestContext(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// Update handles PUT /items/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	var req service.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.catalog.UpdateItem(requestContext(c), c.Param("id"), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteItem(requestContext(c), c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}

// Reconcile handles POST /items/:id/reconcile. Registered only when
// reconciliation is enabled in configuration.
func (h *ItemHandler) Reconcile(c *gin.Context) {
	item, err := h.catalog.Reconcile(requestContext(c), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}
