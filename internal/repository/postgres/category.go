package postgres

import (
	"context"
	"database/sql"
	"errors"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, cat *domain.Category) error {
	query := `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, cat.Name, cat.Description).Scan(&cat.ID)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	return r.getWhere(ctx, "id = $1", id)
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.getWhere(ctx, "name = $1", name)
}

func (r *categoryRepository) getWhere(ctx context.Context, where string, arg interface{}) (*domain.Category, error) {
	cat := &domain.Category{}
	query := `SELECT id, name, description FROM categories WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&cat.ID, &cat.Name, &cat.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("category")
	}
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}
