package dto

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabledash/backend/internal/domain/shared"
)

func TestPaginationMarshalsPerResourceTotalKey(t *testing.T) {
	page := shared.NewPaginated(make([]string, 10), 25, 2, 10)
	response := NewPageResponse(&page, page.Items, "totalUsers")

	raw, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded struct {
		Success    bool                   `json:"success"`
		Pagination map[string]json.Number `json:"pagination"`
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	require.NoError(t, decoder.Decode(&decoded))

	assert.True(t, decoded.Success)
	assert.Equal(t, "25", decoded.Pagination["totalUsers"].String())
	assert.NotContains(t, decoded.Pagination, "totalItems")
	assert.NotContains(t, decoded.Pagination, "totalProducts")
	assert.Equal(t, "2", decoded.Pagination["currentPage"].String())
	assert.Equal(t, "3", decoded.Pagination["totalPages"].String())
}

func TestPaginationDefaultsTotalKey(t *testing.T) {
	raw, err := json.Marshal(Pagination{TotalItems: 7})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "totalItems")
}

func TestPaginationCarriesPageFlags(t *testing.T) {
	raw, err := json.Marshal(Pagination{
		CurrentPage: 2,
		TotalPages:  3,
		TotalItems:  25,
		TotalKey:    "totalAdmins",
		HasNextPage: true,
		HasPrevPage: true,
		Limit:       10,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["hasNextPage"])
	assert.Equal(t, true, decoded["hasPrevPage"])
	assert.Equal(t, float64(10), decoded["limit"])
}

func TestErrorResponseShape(t *testing.T) {
	raw, err := json.Marshal(NewErrorResponse("Resource not found"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"message":"Resource not found"}`, string(raw))
}

func TestMessageResponseOmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(NewMessageResponse("Logged out successfully"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, string(raw))
}
