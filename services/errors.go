package services

import "errors"

// Sentinel errors translated to HTTP statuses by the controllers.
var (
	ErrNotFound          = errors.New("not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrDuplicateCartItem = errors.New("item already in cart")
	ErrCategoryInUse     = errors.New("category is referenced by menu items")
	ErrDemoModify        = errors.New("cannot modify production data in demo mode")
	ErrDemoDelete        = errors.New("cannot delete production data in demo mode")
	ErrDemoDisabled      = errors.New("demo mode is disabled")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidCreds      = errors.New("invalid credentials")
)

// FieldErrors is a field-scoped validation error map. The request is
// rejected before any mutation happens.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string { return "invalid input" }

func fieldError(field, msg string) FieldErrors {
	return FieldErrors{field: {msg}}
}

// ConflictError carries a human-readable "already exists" denial.
type ConflictError struct{ Detail string }

func (e *ConflictError) Error() string { return e.Detail }
