package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	domainRepo "github.com/hallmarkbd/hallmark-api/internal/domain/repository"
	"gorm.io/gorm"
)

// customerNoCounter is the counters row backing customer number
// allocation.
const customerNoCounter = "customer_no"

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts the customer and allocates its sequential number in one
// transaction. The counter row is bumped with a single atomic upsert, so
// concurrent registrations serialize on the row lock and can never
// observe the same number.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int64
		err := tx.Raw(`
			INSERT INTO counters (name, value)
			VALUES (?, 1)
			ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
			RETURNING value
		`, customerNoCounter).Scan(&next).Error
		if err != nil {
			return err
		}

		customer.CustomerNo = int(next)
		return tx.Create(customer).Error
	})
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Order("customer_no ASC").
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *customerRepository) LastCustomerNo(ctx context.Context) (int, error) {
	var last int
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("COALESCE(MAX(customer_no), 0)").
		Scan(&last).Error
	return last, err
}
