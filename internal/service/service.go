// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/jobbot-gateway/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrForbidden is returned to banned users and to non-admins asking for admin listings.
	ErrForbidden = errors.New("forbidden")
	// ErrSearchExpired means the cached search behind a navigation request is gone.
	ErrSearchExpired = errors.New("search expired")
)

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError lets the transport layer report its own parse failures the same way.
func NewInvalidInputError(fe []FieldError) error {
	if err := newInvalidInput(fe); err != nil {
		return err
	}
	return ErrInvalidInput
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// UserService defines registration use cases.
type UserService interface {
	RegisterUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, tgID int64) (model.User, error)
	// BanUser and UnbanUser are admin actions; adminTgID must belong to an active admin.
	BanUser(ctx context.Context, adminTgID, targetTgID int64) (model.User, error)
	UnbanUser(ctx context.Context, adminTgID, targetTgID int64) (model.User, error)
}

// ListingService renders paginated bot screens.
type ListingService interface {
	// SearchVacancies runs a fresh search, caches it and renders its first page.
	SearchVacancies(ctx context.Context, tgID int64, query string) (model.Screen, error)
	// VacancyPage renders a page of the user's cached search.
	VacancyPage(ctx context.Context, tgID int64, page int) (model.Screen, error)
	ApplicationHistory(ctx context.Context, tgID int64, page int) (model.Screen, error)
	AdminUsers(ctx context.Context, tgID int64, page int) (model.Screen, error)
	// ActiveUsers is AdminUsers without banned users.
	ActiveUsers(ctx context.Context, tgID int64, page int) (model.Screen, error)
}

// ApplicationService defines the apply use case.
type ApplicationService interface {
	Apply(ctx context.Context, tgID, vacancyID int64) (model.Application, error)
}

// CallbackService turns a pressed navigation button into the next screen.
type CallbackService interface {
	// HandleCallback returns rendered=false for buttons that don't change the screen.
	HandleCallback(ctx context.Context, tgID int64, token string) (screen model.Screen, rendered bool, err error)
}
