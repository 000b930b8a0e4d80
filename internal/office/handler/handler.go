package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/office/service"
)

// Handlers groups the office HTTP handlers for route registration.
type Handlers struct {
	Finance    *FinanceHandler
	Enrollment *EnrollmentHandler
	Event      *EventHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Finance:    NewFinanceHandler(services.Finance),
		Enrollment: NewEnrollmentHandler(services.Enrollment),
		Event:      NewEventHandler(services.Event),
	}
}

// === response helpers (kept consistent with the inventory handlers) ===

type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, response{Success: true, Data: data})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, response{Success: true, Data: data})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response{Success: false, Message: message})
}

func fail(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, response{Success: false, Message: "internal error"})
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
	c.JSON(status, response{Success: false, Message: apperr.MessageOf(err)})
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		badRequest(c, bindingMessage(fieldErrs[0]))
	} else {
		badRequest(c, "invalid request body")
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

func requestContext(c *gin.Context) context.Context {
	return c.Request.Context()
}
