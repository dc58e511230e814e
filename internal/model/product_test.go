package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestProductCreate_Validate(t *testing.T) {
	tests := []struct {
		name          string
		input         ProductCreate
		expectedField string
	}{
		{
			name:  "Valid minimal payload",
			input: ProductCreate{Name: "Widget", Price: 9.99},
		},
		{
			name: "Valid full payload",
			input: ProductCreate{
				Name:        "Widget",
				Price:       9.99,
				Description: strPtr("A fine widget"),
				Category:    "Hardware",
			},
		},
		{
			name:          "Empty name",
			input:         ProductCreate{Name: "", Price: 9.99},
			expectedField: "name",
		},
		{
			name:          "Name too long",
			input:         ProductCreate{Name: strings.Repeat("a", 101), Price: 9.99},
			expectedField: "name",
		},
		{
			name:  "Name exactly at limit",
			input: ProductCreate{Name: strings.Repeat("a", 100), Price: 9.99},
		},
		{
			name:          "Zero price",
			input:         ProductCreate{Name: "Widget", Price: 0},
			expectedField: "price",
		},
		{
			name:          "Negative price",
			input:         ProductCreate{Name: "Widget", Price: -5},
			expectedField: "price",
		},
		{
			name:          "Description too long",
			input:         ProductCreate{Name: "Widget", Price: 9.99, Description: strPtr(strings.Repeat("d", 501))},
			expectedField: "description",
		},
		{
			name:          "Category too long",
			input:         ProductCreate{Name: "Widget", Price: 9.99, Category: strings.Repeat("c", 51)},
			expectedField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}
}

func TestProductCreate_ApplyDefaults(t *testing.T) {
	t.Run("Omitted category and in_stock get defaults", func(t *testing.T) {
		input := ProductCreate{Name: "Widget", Price: 9.99}
		input.ApplyDefaults()

		assert.Equal(t, DefaultCategory, input.Category)
		require.NotNil(t, input.InStock)
		assert.True(t, *input.InStock)
	})

	t.Run("Explicit values are preserved", func(t *testing.T) {
		inStock := false
		input := ProductCreate{Name: "Widget", Price: 9.99, Category: "Hardware", InStock: &inStock}
		input.ApplyDefaults()

		assert.Equal(t, "Hardware", input.Category)
		require.NotNil(t, input.InStock)
		assert.False(t, *input.InStock)
	})
}

func TestProductUpdate_Validate(t *testing.T) {
	tests := []struct {
		name          string
		patch         ProductUpdate
		expectedField string
	}{
		{
			name:  "Empty patch is valid",
			patch: ProductUpdate{},
		},
		{
			name:  "Single valid field",
			patch: ProductUpdate{Price: floatPtr(12.5)},
		},
		{
			name:          "Empty name present",
			patch:         ProductUpdate{Name: strPtr("")},
			expectedField: "name",
		},
		{
			name:          "Name too long",
			patch:         ProductUpdate{Name: strPtr(strings.Repeat("a", 101))},
			expectedField: "name",
		},
		{
			name:          "Non-positive price",
			patch:         ProductUpdate{Price: floatPtr(-5)},
			expectedField: "price",
		},
		{
			name:          "Valid name with invalid price rejects whole patch",
			patch:         ProductUpdate{Name: strPtr("Gadget"), Price: floatPtr(0)},
			expectedField: "price",
		},
		{
			name:          "Description too long",
			patch:         ProductUpdate{Description: strPtr(strings.Repeat("d", 501))},
			expectedField: "description",
		},
		{
			name:          "Category too long",
			patch:         ProductUpdate{Category: strPtr(strings.Repeat("c", 51))},
			expectedField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{ID: 42}
	assert.Equal(t, "Product 42 not found", err.Error())
}
