package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create persists the order together with its line items in one
	// transaction.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// Delete removes the order and its items permanently. Orders have no
	// soft-delete state.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every order, newest first, with items preloaded.
	List(ctx context.Context) ([]entity.Order, error)
	// ListPage returns one page of orders, newest first.
	ListPage(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error)
	// ListByCreatedRange returns orders with createdAt in [start, end]
	// inclusive at both boundaries.
	ListByCreatedRange(ctx context.Context, start, end time.Time) ([]entity.Order, error)
	// ListRecent returns the latest limit orders by creation time.
	ListRecent(ctx context.Context, limit int) ([]entity.Order, error)
	Count(ctx context.Context) (int64, error)
	// TotalRevenueCents sums total_amount over all orders.
	TotalRevenueCents(ctx context.Context) (int64, error)
}
