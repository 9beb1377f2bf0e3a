// internal/repository/kv_repository.go
package repository

import (
	"context"
	"database/sql"

	"github.com/unclebandit/campaign-planner/internal/store"
)

// KVRepository keeps store.Store values in the kv_store table.
type KVRepository struct {
	DB *sql.DB
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key=$1`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, key, value)
	return err
}

func (r *KVRepository) Clear(ctx context.Context, key string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key=$1`, key)
	return err
}

var _ store.Store = (*KVRepository)(nil)
