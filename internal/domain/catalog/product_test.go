package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabledash/backend/internal/domain/shared"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("iPhone 15", "smartphones", "Apple", d("999.99"), d("7.5"), d("4.7"), 42)
	require.NoError(t, err)

	assert.Equal(t, "iPhone 15", p.Title)
	assert.Equal(t, "smartphones", p.Category)
	assert.Equal(t, "Apple", p.Brand)
	assert.True(t, p.Price.Equal(d("999.99")))
	assert.Equal(t, 42, p.Stock)
}

func TestNewProductValidation(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		brand    string
		price    decimal.Decimal
		discount decimal.Decimal
		rating   decimal.Decimal
		stock    int
		wantMsg  string
	}{
		{
			name:     "missing title",
			category: "smartphones", brand: "Apple",
			wantMsg: "Title is required",
		},
		{
			name:  "missing category",
			title: "iPhone 15", brand: "Apple",
			wantMsg: "Category is required",
		},
		{
			name:  "missing brand",
			title: "iPhone 15", category: "smartphones",
			wantMsg: "Brand is required",
		},
		{
			name:  "negative price",
			title: "iPhone 15", category: "smartphones", brand: "Apple",
			price:   d("-1"),
			wantMsg: "Price cannot be negative",
		},
		{
			name:  "discount above 100",
			title: "iPhone 15", category: "smartphones", brand: "Apple",
			discount: d("101"),
			wantMsg:  "Discount percentage must be between 0 and 100",
		},
		{
			name:  "rating above 5",
			title: "iPhone 15", category: "smartphones", brand: "Apple",
			rating:  d("5.1"),
			wantMsg: "Rating must be between 0 and 5",
		},
		{
			name:  "negative stock",
			title: "iPhone 15", category: "smartphones", brand: "Apple",
			stock:   -1,
			wantMsg: "Stock cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.title, tt.category, tt.brand, tt.price, tt.discount, tt.rating, tt.stock)
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
			assert.Contains(t, domainErr.Message, tt.wantMsg)
		})
	}
}

func TestProductValidateAggregatesProblems(t *testing.T) {
	_, err := NewProduct("", "", "", d("-1"), d("0"), d("0"), 0)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "Title is required")
	assert.Contains(t, err.Error(), "Category is required")
	assert.Contains(t, err.Error(), "Brand is required")
	assert.Contains(t, err.Error(), "Price cannot be negative")
}

func TestNewLocalProduct(t *testing.T) {
	p, err := NewLocalProduct("Espresso Beans", "groceries", "Lavazza", d("14.50"), d("0"), d("4.2"), 12)
	require.NoError(t, err)
	assert.Empty(t, p.Image)

	p.SetImage("https://storage.example.com/products/1.jpg")
	assert.Equal(t, "https://storage.example.com/products/1.jpg", p.Image)
}

func TestNewLocalProductValidation(t *testing.T) {
	_, err := NewLocalProduct("Espresso Beans", "groceries", "Lavazza", d("-5"), d("0"), d("0"), 0)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Message, "Price cannot be negative")
}
