package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

const userColumns = `id, tg_id, username, first_name, last_name, language_code, is_banned, is_admin, created_at, updated_at`

type userRepository struct{ pool *pgxpool.Pool }

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.TgID, &u.Username, &u.FirstName, &u.LastName, &u.LanguageCode,
		&u.IsBanned, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *userRepository) Upsert(ctx context.Context, u model.User) (model.User, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.User{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO users (tg_id, username, first_name, last_name, language_code)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (tg_id) DO UPDATE SET
		     username = EXCLUDED.username,
		     first_name = EXCLUDED.first_name,
		     last_name = EXCLUDED.last_name,
		     language_code = EXCLUDED.language_code,
		     updated_at = NOW()
		 RETURNING `+userColumns,
		u.TgID, u.Username, u.FirstName, u.LastName, u.LanguageCode,
	)
	out, err := scanUser(row)
	if err != nil {
		return model.User{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *userRepository) GetByTgID(ctx context.Context, tgID int64) (model.User, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.User{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanUser(exec.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE tg_id = $1`, tgID))
	if err != nil {
		// MapPgError turns pgx.ErrNoRows into ErrNotFound.
		return model.User{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

func (r *userRepository) ListActive(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE NOT is_banned ORDER BY id`)
}

func (r *userRepository) SetBanned(ctx context.Context, tgID int64, banned bool) (model.User, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.User{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanUser(exec.QueryRow(ctx,
		`UPDATE users SET is_banned = $2, updated_at = NOW()
		 WHERE tg_id = $1
		 RETURNING `+userColumns,
		tgID, banned,
	))
	if err != nil {
		return model.User{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *userRepository) list(ctx context.Context, sql string) ([]model.User, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, sql)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.UserRepository = (*userRepository)(nil)
