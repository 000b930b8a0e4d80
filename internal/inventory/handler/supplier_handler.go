package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/service"
)

// SupplierHandler exposes supplier directory CRUD.
type SupplierHandler struct {
	supplier *service.SupplierService
}

func NewSupplierHandler(supplier *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplier: supplier}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req service.CreateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	sup, err := h.supplier.Create(requestContext(c), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, sup)
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplier.List(requestContext(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, suppliers)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	sup, err := h.supplier.Get(requestContext(c), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, sup)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var req service.UpdateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	sup, err := h.supplier.Update(requestContext(c), c.Param("id"), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, sup)
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	if err := h.supplier.Delete(requestContext(c), c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}
