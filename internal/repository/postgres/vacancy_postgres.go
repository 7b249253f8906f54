package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

const vacancyColumns = `id, external_id, title, company, location, salary, url, published_at, created_at`

type vacancyRepository struct{ pool *pgxpool.Pool }

func NewVacancyRepository(pool *pgxpool.Pool) repository.VacancyRepository {
	return &vacancyRepository{pool: pool}
}

func scanVacancy(row pgx.Row) (model.Vacancy, error) {
	var v model.Vacancy
	err := row.Scan(&v.ID, &v.ExternalID, &v.Title, &v.Company, &v.Location, &v.Salary, &v.URL,
		&v.PublishedAt, &v.CreatedAt)
	return v, err
}

// escapeLike keeps user input from acting as LIKE wildcards.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (r *vacancyRepository) Search(ctx context.Context, query string, limit int) ([]model.Vacancy, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	limit = sanitizeLimit(limit)
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+vacancyColumns+`
		 FROM vacancies
		 WHERE title ILIKE $1 OR company ILIKE $1
		 ORDER BY published_at DESC, id DESC
		 LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Vacancy, 0, limit)
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func (r *vacancyRepository) GetByID(ctx context.Context, id int64) (model.Vacancy, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Vacancy{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanVacancy(exec.QueryRow(ctx, `SELECT `+vacancyColumns+` FROM vacancies WHERE id = $1`, id))
	if err != nil {
		return model.Vacancy{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.VacancyRepository = (*vacancyRepository)(nil)
