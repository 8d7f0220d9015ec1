// Package handler contains the per-resource HTTP handlers. Each
// handler is a thin composition of request binding, one application
// service call and envelope rendering.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response carrying data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response carrying data
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Message sends a 200 response carrying only a message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// BadRequest sends a 400 failure response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// HandleError translates an error into the failure envelope. Domain
// errors map through their code; anything else is a masked 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Message))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Server Error"))
}

// parseID reads the :id path parameter as a positive integer
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, shared.NewDomainError("INVALID_INPUT", "Invalid id parameter")
	}
	return id, nil
}

// parseFilter reads page/limit/search query parameters. Values that
// fail to parse fall back to zero and are normalized downstream.
func parseFilter(c *gin.Context) shared.Filter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(shared.DefaultLimit)))
	return shared.Filter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}
}
