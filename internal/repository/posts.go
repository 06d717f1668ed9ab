package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradepost/backend/internal/model"
)

const postColumns = "id, author_id, title, body, status, publish_at, created_at, updated_at"

// PostsRepository persists posts.
type PostsRepository struct {
	pool *pgxpool.Pool
}

func NewPostsRepository(pool *pgxpool.Pool) *PostsRepository {
	return &PostsRepository{pool: pool}
}

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.Status,
		&p.PublishAt, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create inserts the post. A missing author surfaces as a foreign key
// violation for the funnel to translate; there is no pre-check.
func (r *PostsRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `
		INSERT INTO posts (id, author_id, title, body, status, publish_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns

	created, err := scanPost(r.pool.QueryRow(ctx, query,
		post.ID, post.AuthorID, post.Title, post.Body, post.Status, post.PublishAt))
	if err != nil {
		return model.Post{}, tableError("posts", err)
	}
	return created, nil
}

func (r *PostsRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Post{}, tableError("posts", err)
	}
	return post, nil
}

func (r *PostsRepository) List(ctx context.Context, filter ListFilter) ([]model.Post, error) {
	query, args := buildListQuery(`SELECT `+postColumns+` FROM posts`, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, tableError("posts", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, tableError("posts", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, tableError("posts", err)
	}
	return posts, nil
}

// ListByAuthor returns the author's posts, newest first.
func (r *PostsRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, tableError("posts", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, tableError("posts", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, tableError("posts", err)
	}
	return posts, nil
}

// PostPatch holds the partial update for a post. Nil fields keep the
// current column value, including PublishAt: clearing a schedule means
// publishing or archiving, not nulling the timestamp.
type PostPatch struct {
	Title     *string
	Body      *string
	Status    *model.PostStatus
	PublishAt *time.Time
}

func (r *PostsRepository) Update(ctx context.Context, id uuid.UUID, patch PostPatch) (model.Post, error) {
	query := `
		UPDATE posts SET
			title = COALESCE($2, title),
			body = COALESCE($3, body),
			status = COALESCE($4, status),
			publish_at = COALESCE($5, publish_at),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.pool.QueryRow(ctx, query, id,
		patch.Title, patch.Body, patch.Status, patch.PublishAt))
	if err != nil {
		return model.Post{}, tableError("posts", err)
	}
	return post, nil
}

func (r *PostsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return tableError("posts", err)
	}
	if tag.RowsAffected() == 0 {
		return tableError("posts", pgx.ErrNoRows)
	}
	return nil
}

// PublishDue flips every draft whose publish time has passed to published,
// returning how many posts changed. Called by the scheduler.
func (r *PostsRepository) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE posts SET
			status = $1,
			updated_at = now()
		WHERE status = $2 AND publish_at IS NOT NULL AND publish_at <= $3`

	tag, err := r.pool.Exec(ctx, query, model.PostStatusPublished, model.PostStatusDraft, now)
	if err != nil {
		return 0, tableError("posts", err)
	}
	return tag.RowsAffected(), nil
}
