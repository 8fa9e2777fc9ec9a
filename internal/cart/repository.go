package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"technotrove/internal/logger"

	"go.uber.org/zap"
)

// stateKey is the fixed storage key the whole cart lives under.
const stateKey = "cart_state"

// Repository is durable save/load for the cart. Save overwrites the
// previous value wholesale; Load reports ok=false when nothing was ever
// saved or the saved value cannot be read.
type Repository interface {
	Save(ctx context.Context, items Items) error
	Load(ctx context.Context) (Items, bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, items Items) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_state (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = NOW()
	`, stateKey, payload)
	if err != nil {
		return fmt.Errorf("write cart state: %w", err)
	}
	return nil
}

func (r *repository) Load(ctx context.Context) (Items, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT payload FROM cart_state WHERE key = $1
	`, stateKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cart state: %w", err)
	}

	var items Items
	if err := json.Unmarshal(payload, &items); err != nil {
		// unreadable state fails open to an empty cart
		logger.FromCtx(ctx).Warn("discarding unreadable cart state", zap.Error(err))
		return nil, false, nil
	}
	return items, true, nil
}
