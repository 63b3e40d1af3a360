package repository

import (
	"context"
	"errors"

	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	domainRepo "github.com/hallmarkbd/hallmark-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type itemNameRepository struct {
	db *gorm.DB
}

// NewItemNameRepository creates a new item name repository
func NewItemNameRepository(db *gorm.DB) domainRepo.ItemNameRepository {
	return &itemNameRepository{db: db}
}

func (r *itemNameRepository) ListByType(ctx context.Context, serviceType enum.ServiceType) ([]entity.ItemName, error) {
	var items []entity.ItemName
	err := r.db.WithContext(ctx).
		Where("type = ?", serviceType).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *itemNameRepository) GetByNormalized(ctx context.Context, serviceType enum.ServiceType, normalized string) (*entity.ItemName, error) {
	var item entity.ItemName
	err := r.db.WithContext(ctx).
		First(&item, "type = ? AND normalized = ?", serviceType, normalized).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemNameRepository) Create(ctx context.Context, item *entity.ItemName) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateIfAbsent relies on the (type, normalized) unique index: existing
// rows are left untouched.
func (r *itemNameRepository) CreateIfAbsent(ctx context.Context, item *entity.ItemName) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "type"}, {Name: "normalized"}},
			DoNothing: true,
		}).
		Create(item).Error
}
