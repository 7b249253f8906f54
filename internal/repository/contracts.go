package repository

import (
	"context"
	"time"

	"github.com/maxviazov/jobbot-gateway/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// UserRepository declares persistence operations for bot users.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type UserRepository interface {
	// Upsert inserts a user or refreshes profile fields keyed by TgID.
	// Ban and admin flags are never overwritten from here.
	Upsert(ctx context.Context, u model.User) (model.User, error)
	GetByTgID(ctx context.Context, tgID int64) (model.User, error)
	// ListAll returns every user ordered by registration.
	ListAll(ctx context.Context) ([]model.User, error)
	// ListActive is ListAll without banned users.
	ListActive(ctx context.Context) ([]model.User, error)
	// SetBanned flips the ban flag and returns the updated user.
	SetBanned(ctx context.Context, tgID int64, banned bool) (model.User, error)
}

// VacancyRepository declares read operations over imported vacancies.
type VacancyRepository interface {
	// Search matches query against title and company, newest first, at most limit rows.
	Search(ctx context.Context, query string, limit int) ([]model.Vacancy, error)
	GetByID(ctx context.Context, id int64) (model.Vacancy, error)
}

// ApplicationRepository declares persistence operations for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a model.Application) (model.Application, error)
	// ListByUser returns a user's applications newest first, joined with vacancy titles.
	ListByUser(ctx context.Context, userID int64) ([]model.Application, error)
}

// SnapshotRepository keeps short-lived search snapshots.
type SnapshotRepository interface {
	Save(ctx context.Context, key string, s model.SearchSnapshot, ttl time.Duration) error
	// Load returns ErrNotFound once the snapshot expired.
	Load(ctx context.Context, key string) (model.SearchSnapshot, error)
}
