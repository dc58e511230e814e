package model

import (
	"time"
	"unicode/utf8"
)

// Field constraints for product payloads.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxCategoryLength    = 50

	// DefaultCategory is assigned when a client omits the category at creation.
	DefaultCategory = "General"
)

// Product represents a product record in the catalogue.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Description *string   `json:"description,omitempty" db:"description"`
	Category    string    `json:"category" db:"category"`
	InStock     bool      `json:"in_stock" db:"in_stock"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductCreate is the payload for creating a product. Category and InStock
// are optional; defaults are applied by ApplyDefaults before persistence.
type ProductCreate struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	InStock     *bool   `json:"in_stock,omitempty"`
}

// Validate checks the creation payload against field constraints.
// It is a pure function of the payload and must be called before any mutation.
func (p *ProductCreate) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(p.Name) > MaxNameLength {
		return &ValidationError{Field: "name", Message: "must be at most 100 characters"}
	}
	if p.Price <= 0 {
		return &ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if p.Description != nil && utf8.RuneCountInString(*p.Description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: "must be at most 500 characters"}
	}
	if utf8.RuneCountInString(p.Category) > MaxCategoryLength {
		return &ValidationError{Field: "category", Message: "must be at most 50 characters"}
	}
	return nil
}

// ApplyDefaults fills in the server-side defaults for omitted optional fields.
func (p *ProductCreate) ApplyDefaults() {
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
}

// ProductUpdate is a sparse patch: every field is optional and only fields
// present in the request are applied. A nil pointer means "leave untouched".
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

// Validate checks every present field under the same rules as creation.
// A failure on any field rejects the whole patch; nothing is applied.
func (u *ProductUpdate) Validate() error {
	if u.Name != nil {
		if *u.Name == "" {
			return &ValidationError{Field: "name", Message: "must not be empty"}
		}
		if utf8.RuneCountInString(*u.Name) > MaxNameLength {
			return &ValidationError{Field: "name", Message: "must be at most 100 characters"}
		}
	}
	if u.Price != nil && *u.Price <= 0 {
		return &ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if u.Description != nil && utf8.RuneCountInString(*u.Description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: "must be at most 500 characters"}
	}
	if u.Category != nil && utf8.RuneCountInString(*u.Category) > MaxCategoryLength {
		return &ValidationError{Field: "category", Message: "must be at most 50 characters"}
	}
	return nil
}

// ListFilter holds the optional equality filters and pagination window for
// listing products. Nil filter pointers mean "no filter".
type ListFilter struct {
	Category *string
	InStock  *bool
	Skip     int
	Limit    int
}

// HealthStatus is the response body for a successful health probe.
type HealthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// CategoryList is the response body for the category listing.
type CategoryList struct {
	Categories []string `json:"categories"`
}
