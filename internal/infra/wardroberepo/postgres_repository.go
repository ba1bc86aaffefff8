package wardroberepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
)

// PostgresRepository implements wardrobe.ItemRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new wardrobe row.
func (r *PostgresRepository) Create(ctx context.Context, item wardrobe.Item) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO wardrobe_items (id, user_id, description, image_key, image_mime_type, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
	`, item.ID, item.UserID, item.Description, item.ImageKey, item.ImageMimeType, item.CreatedAt)
	return err
}

// List returns a user's items oldest first.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]wardrobe.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, description, image_key, image_mime_type, created_at
		FROM wardrobe_items
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []wardrobe.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get fetches one item owned by the user.
func (r *PostgresRepository) Get(ctx context.Context, userID int64, id uuid.UUID) (wardrobe.Item, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, description, image_key, image_mime_type, created_at
		FROM wardrobe_items
		WHERE id = $1 AND user_id = $2
		LIMIT 1
	`, id, userID)
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return wardrobe.Item{}, false, rows.Err()
	}
	item, err := scanItem(rows)
	if err != nil {
		return wardrobe.Item{}, false, err
	}
	return item, true, rows.Err()
}

// Delete removes one item owned by the user.
func (r *PostgresRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wardrobe_items WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (wardrobe.Item, error) {
	var (
		item     wardrobe.Item
		imageKey sql.NullString
		mimeType sql.NullString
		created  time.Time
	)
	if err := row.Scan(&item.ID, &item.UserID, &item.Description, &imageKey, &mimeType, &created); err != nil {
		return wardrobe.Item{}, err
	}
	item.ImageKey = imageKey.String
	item.ImageMimeType = mimeType.String
	item.CreatedAt = created.UTC()
	return item, nil
}

var _ wardrobe.ItemRepository = (*PostgresRepository)(nil)
