package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"toolshare-backend/internal/apperr"
	"toolshare-backend/internal/domain"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `id, owner_id, name, description, brand, model, category_id, daily_price, warranty, condition, is_available, image_url, avg_rating, rating_count, created_at`

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (owner_id, name, description, brand, model, category_id, daily_price, warranty, condition, is_available, image_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		t.OwnerID, t.Name, t.Description, t.Brand, t.Model, t.CategoryID,
		t.DailyPrice, t.Warranty, t.Condition, t.IsAvailable, t.ImageURL).
		Scan(&t.ID, &t.CreatedAt)
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	t := &domain.Tool{}
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Brand, &t.Model, &t.CategoryID,
		&t.DailyPrice, &t.Warranty, &t.Condition, &t.IsAvailable, &t.ImageURL,
		&t.AvgRating, &t.RatingCount, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("tool")
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, description=$2, brand=$3, model=$4, category_id=$5, daily_price=$6, warranty=$7, condition=$8, is_available=$9, image_url=$10 WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query,
		t.Name, t.Description, t.Brand, t.Model, t.CategoryID,
		t.DailyPrice, t.Warranty, t.Condition, t.IsAvailable, t.ImageURL, t.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("tool")
	}
	return nil
}

// Delete removes the tool and its dependents in one transaction so a half
// deleted tool never becomes visible.
func (r *toolRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dependents := []string{
		`DELETE FROM messages WHERE chat_id IN (SELECT id FROM chats WHERE tool_id = $1)`,
		`DELETE FROM chats WHERE tool_id = $1`,
		`DELETE FROM payments WHERE request_id IN (SELECT id FROM requests WHERE tool_id = $1)`,
		`DELETE FROM requests WHERE tool_id = $1`,
		`DELETE FROM rentals WHERE tool_id = $1`,
		`DELETE FROM ratings WHERE tool_id = $1`,
	}
	for _, q := range dependents {
		logger.DatabaseCall("DeleteTool", q, "tool_id", id)
		res, err := tx.ExecContext(ctx, q, id)
		if err != nil {
			logger.DatabaseResult("DeleteTool", 0, err, "tool_id", id)
			return err
		}
		rows, _ := res.RowsAffected()
		logger.DatabaseResult("DeleteTool", rows, nil, "tool_id", id)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("tool")
	}
	return tx.Commit()
}

func (r *toolRepository) List(ctx context.Context, f domain.ToolFilter) ([]domain.Tool, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	addCond := func(cond string, val interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, val)
		argPos++
	}

	if f.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d OR model ILIKE $%d)", argPos, argPos, argPos, argPos))
		args = append(args, "%"+f.Query+"%")
		argPos++
	}
	if f.CategoryID != nil {
		addCond("category_id = $%d", *f.CategoryID)
	}
	if f.Brand != "" {
		addCond("brand ILIKE $%d", "%"+f.Brand+"%")
	}
	if f.Condition != nil {
		addCond("condition = $%d", *f.Condition)
	}
	if f.MinPrice != nil {
		addCond("daily_price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		addCond("daily_price <= $%d", *f.MaxPrice)
	}
	if f.Available != nil {
		addCond("is_available = $%d", *f.Available)
	}
	if f.OwnerID != nil {
		addCond("owner_id = $%d", *f.OwnerID)
	}

	query := `SELECT ` + toolColumns + ` FROM tools`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d LIMIT $%d", argPos, argPos+1)
	args = append(args, f.Skip, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Brand, &t.Model, &t.CategoryID,
			&t.DailyPrice, &t.Warranty, &t.Condition, &t.IsAvailable, &t.ImageURL,
			&t.AvgRating, &t.RatingCount, &t.CreatedAt); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) ClaimAvailability(ctx context.Context, id int32) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tools SET is_available = false WHERE id = $1 AND is_available = true`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *toolRepository) ReleaseAvailability(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tools SET is_available = true WHERE id = $1`, id)
	return err
}

func (r *toolRepository) UpdateRatingAggregate(ctx context.Context, id int32, avg float64, count int32) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tools SET avg_rating = $1, rating_count = $2 WHERE id = $3`, avg, count, id)
	return err
}

func (r *toolRepository) Stats(ctx context.Context) (*domain.ToolStats, error) {
	stats := &domain.ToolStats{
		ToolsByCategory:  map[string]int32{},
		ToolsByCondition: map[string]int32{},
	}
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*), count(*) FILTER (WHERE is_available), count(*) FILTER (WHERE NOT is_available) FROM tools`).
		Scan(&stats.TotalTools, &stats.AvailableTools, &stats.RentedTools)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT c.name, count(t.id) FROM tools t JOIN categories c ON c.id = t.category_id GROUP BY c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var n int32
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		stats.ToolsByCategory[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	condRows, err := r.db.QueryContext(ctx, `SELECT condition, count(*) FROM tools GROUP BY condition`)
	if err != nil {
		return nil, err
	}
	defer condRows.Close()
	for condRows.Next() {
		var cond string
		var n int32
		if err := condRows.Scan(&cond, &n); err != nil {
			return nil, err
		}
		stats.ToolsByCondition[cond] = n
	}
	return stats, condRows.Err()
}
