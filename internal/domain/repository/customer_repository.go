package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	// Create persists the customer and assigns its sequential CustomerNo
	// atomically within the same transaction.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every customer ordered by customer number.
	List(ctx context.Context) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
	// LastCustomerNo returns the highest assigned customer number, 0 when
	// no customers exist.
	LastCustomerNo(ctx context.Context) (int, error)
}
