package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tabledash/backend/internal/domain/shared"
)

func TestHandleErrorMapsDomainCodes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"conflict", shared.NewDomainError("ALREADY_EXISTS", "Email already exists"), http.StatusConflict, "Email already exists"},
		{"validation", shared.NewDomainError("VALIDATION_ERROR", "Price cannot be negative"), http.StatusBadRequest, "Price cannot be negative"},
		{"masked internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "Server Error"},
	}

	var base BaseHandler
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			base.HandleError(c, tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.JSONEq(t, `{"success":false,"message":"`+tt.message+`"}`, recorder.Body.String())
		})
	}
}
