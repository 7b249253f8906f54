package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

type applicationRepository struct{ pool *pgxpool.Pool }

func NewApplicationRepository(pool *pgxpool.Pool) repository.ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, a model.Application) (model.Application, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Application{}, err
	}
	status := a.Status
	if status == "" {
		status = model.ApplicationApplied
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO applications (user_id, vacancy_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, vacancy_id, status, created_at, updated_at`,
		a.UserID, a.VacancyID, status,
	)
	var out model.Application
	if err := row.Scan(&out.ID, &out.UserID, &out.VacancyID, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Application{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Application, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT a.id, a.user_id, a.vacancy_id, v.title, v.company, a.status, a.created_at, a.updated_at
		 FROM applications a
		 JOIN vacancies v ON v.id = a.vacancy_id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`,
		userID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Application, 0)
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.VacancyID, &a.VacancyTitle, &a.Company, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.ApplicationRepository = (*applicationRepository)(nil)
