package repository

import (
	"context"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
)

// CartSnapshotRepository defines the interface for the durable single-slot
// cart mirror. Save replaces any previous value for the session
// (last-write-wins, no merge); Get returns (nil, nil) when the slot is empty.
type CartSnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.CartSnapshot) error
	Get(ctx context.Context, sessionID string) (*entity.CartSnapshot, error)
	Delete(ctx context.Context, sessionID string) error
}
