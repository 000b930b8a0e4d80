package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/service"
)

// Response is the uniform envelope for every endpoint. Message is set only on
// failure, Data only on success.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: message})
}

// Fail maps a service error onto a status code through the error taxonomy.
// Unknown errors fall through to 500 with a generic message so storage detail
// never leaks to clients.
func Fail(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "internal error"})
		return
	}
	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindTimeout:
		status = http.StatusGatewayTimeout
	case apperr.KindCancelled:
		status = 499
	}
	c.JSON(status, Response{Success: false, Message: apperr.MessageOf(err)})
}

// bindJSON decodes the request body into obj. On failure it answers 400 with
// a message naming the offending field; decoder and validator internals never
// reach the wire.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		BadRequest(c, bindingMessage(fieldErrs[0]))
	} else {
		BadRequest(c, "invalid request body")
	}
	return false
}

func bindingMessage(fe validator.FieldError) string {
	field := fe.Field()
	if field != "" {
		field = strings.ToLower(field[:1]) + field[1:]
	}
	if fe.Tag() == "required" {
		return field + " is required"
	}
	return field + " is invalid"
}

// Handlers groups the inventory HTTP handlers for route registration.
type Handlers struct {
	Item     *ItemHandler
	Issue    *IssueHandler
	Summary  *SummaryHandler
	Supplier *SupplierHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Item:     NewItemHandler(services.Catalog),
		Issue:    NewIssueHandler(services.Issue),
		Summary:  NewSummaryHandler(services.Summary),
		Supplier: NewSupplierHandler(services.Supplier),
	}
}

// requestContext returns the context handlers pass down to services.
func requestContext(c *gin.Context) context.Context {
	return c.Request.Context()
}
