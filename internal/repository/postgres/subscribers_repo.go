package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

type subscribersRepo struct{ pool *pgxpool.Pool }

func (r *subscribersRepo) Create(ctx context.Context, s models.Subscriber) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO subscribers(email) VALUES($1)`, s.Email)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}

func (r *subscribersRepo) List(ctx context.Context) ([]models.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `SELECT email, created_at FROM subscribers ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Subscriber{}
	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
