package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

type blogsRepo struct{ pool *pgxpool.Pool }

const blogColumns = `id, title, content, author, category, COALESCE(external_link, ''), likes, created_at`

func scanBlog(row pgx.Row) (models.Blog, error) {
	var b models.Blog
	var id uuid.UUID
	err := row.Scan(&id, &b.Title, &b.Content, &b.Author, &b.Category, &b.ExternalLink, &b.Likes, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Blog{}, repository.ErrNotFound
	}
	b.ID = id.String()
	return b, err
}

func (r *blogsRepo) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	var link *string
	if b.ExternalLink != "" {
		link = &b.ExternalLink
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO blogs(id, title, content, author, category, external_link)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+blogColumns,
		uuid.New(), b.Title, b.Content, b.Author, b.Category, link,
	)
	out, err := scanBlog(row)
	if err != nil {
		return models.Blog{}, fmt.Errorf("insert blog: %w", err)
	}
	return out, nil
}

func (r *blogsRepo) List(ctx context.Context) ([]models.Blog, error) {
	return r.query(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY created_at`)
}

func (r *blogsRepo) ListByAuthor(ctx context.Context, author string) ([]models.Blog, error) {
	return r.query(ctx, `SELECT `+blogColumns+` FROM blogs WHERE author=$1 ORDER BY created_at`, author)
}

func (r *blogsRepo) query(ctx context.Context, sql string, args ...any) ([]models.Blog, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *blogsRepo) UpdateContent(ctx context.Context, id, content string) (models.Blog, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Blog{}, repository.ErrNotFound
	}
	return scanBlog(r.pool.QueryRow(ctx,
		`UPDATE blogs SET content=$2 WHERE id=$1 RETURNING `+blogColumns, uid, content))
}

func (r *blogsRepo) Like(ctx context.Context, id string) (models.Blog, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Blog{}, repository.ErrNotFound
	}
	return scanBlog(r.pool.QueryRow(ctx,
		`UPDATE blogs SET likes = likes + 1 WHERE id=$1 RETURNING `+blogColumns, uid))
}

func (r *blogsRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
