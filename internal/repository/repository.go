// Package repository contains data access abstractions for recorded
// compliance checks. Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"
	"errors"

	"complyapi/internal/model"
)

// ErrNotFound is returned when no row matches the requested ID.
var ErrNotFound = errors.New("record not found")

// CheckRepository defines persistence for compliance checks.
// No business logic here; strictly persistence operations.
type CheckRepository interface {
	// Create inserts a new check and returns the stored record.
	Create(ctx context.Context, check *model.ComplianceCheck) (*model.ComplianceCheck, error)

	// FindByID returns a check by its ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.ComplianceCheck, error)

	// List returns a page of checks, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.ComplianceCheck], error)

	// Delete removes a check by ID or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
