// Package dto defines the JSON envelope shared by every endpoint.
package dto

import (
	"encoding/json"

	"github.com/tabledash/backend/internal/domain/shared"
)

// Response is the standard API envelope. Every endpoint answers with
// success plus, depending on the operation, a message, a data payload
// and pagination.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination mirrors shared.Paginated on the wire. The total count is
// keyed per resource (totalUsers, totalProducts, totalAdmins), so it
// marshals through a dynamic key.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	TotalKey    string
	HasNextPage bool
	HasPrevPage bool
	Limit       int
}

// MarshalJSON emits the per-resource total key alongside the fixed fields
func (p Pagination) MarshalJSON() ([]byte, error) {
	totalKey := p.TotalKey
	if totalKey == "" {
		totalKey = "totalItems"
	}
	return json.Marshal(map[string]any{
		"currentPage": p.CurrentPage,
		"totalPages":  p.TotalPages,
		totalKey:      p.TotalItems,
		"hasNextPage": p.HasNextPage,
		"hasPrevPage": p.HasPrevPage,
		"limit":       p.Limit,
	})
}

// NewSuccessResponse creates a success response carrying data
func NewSuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a success response carrying only a message
func NewMessageResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

// NewPageResponse creates a success response for one page of a
// collection, keyed with the collection's total-count name. The data
// slice is passed separately because handlers remap application DTOs
// to wire shapes before responding.
func NewPageResponse[T any](page *shared.Paginated[T], data any, totalKey string) Response {
	return Response{
		Success: true,
		Data:    data,
		Pagination: &Pagination{
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			TotalItems:  page.TotalItems,
			TotalKey:    totalKey,
			HasNextPage: page.HasNextPage,
			HasPrevPage: page.HasPrevPage,
			Limit:       page.Limit,
		},
	}
}

// NewErrorResponse creates a failure response
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
