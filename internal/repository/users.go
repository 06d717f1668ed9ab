package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradepost/backend/internal/model"
)

const userColumns = "id, email, name, status, created_at, updated_at"

// UsersRepository persists users.
type UsersRepository struct {
	pool *pgxpool.Pool
}

func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{pool: pool}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts the user and returns the stored row. Email uniqueness is
// the database's job; a violation surfaces as a pgconn error for the funnel.
func (r *UsersRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `
		INSERT INTO users (id, email, name, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query, user.ID, user.Email, user.Name, user.Status))
	if err != nil {
		return model.User{}, tableError("users", err)
	}
	return created, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.User{}, tableError("users", err)
	}
	return user, nil
}

func (r *UsersRepository) List(ctx context.Context, filter ListFilter) ([]model.User, error) {
	query, args := buildListQuery(`SELECT `+userColumns+` FROM users`, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, tableError("users", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, tableError("users", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, tableError("users", err)
	}
	return users, nil
}

// UserPatch holds the partial update for a user. Nil fields keep the
// current column value.
type UserPatch struct {
	Email  *string
	Name   *string
	Status *model.UserStatus
}

func (r *UsersRepository) Update(ctx context.Context, id uuid.UUID, patch UserPatch) (model.User, error) {
	query := `
		UPDATE users SET
			email = COALESCE($2, email),
			name = COALESCE($3, name),
			status = COALESCE($4, status),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.pool.QueryRow(ctx, query, id, patch.Email, patch.Name, patch.Status))
	if err != nil {
		return model.User{}, tableError("users", err)
	}
	return user, nil
}

func (r *UsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return tableError("users", err)
	}
	if tag.RowsAffected() == 0 {
		return tableError("users", pgx.ErrNoRows)
	}
	return nil
}
