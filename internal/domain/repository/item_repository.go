package repository

import (
	"context"

	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
)

// ItemNameRepository defines the interface for item catalog operations
type ItemNameRepository interface {
	// ListByType returns all catalog entries of one service type sorted
	// alphabetically by name.
	ListByType(ctx context.Context, serviceType enum.ServiceType) ([]entity.ItemName, error)
	// GetByNormalized looks up an entry by its (type, normalized) key.
	GetByNormalized(ctx context.Context, serviceType enum.ServiceType, normalized string) (*entity.ItemName, error)
	Create(ctx context.Context, item *entity.ItemName) error
	// CreateIfAbsent inserts the entry unless its (type, normalized) key
	// already exists. Existing entries are never overwritten.
	CreateIfAbsent(ctx context.Context, item *entity.ItemName) error
}
