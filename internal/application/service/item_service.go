package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	"github.com/hallmarkbd/hallmark-api/internal/domain/repository"
	"github.com/hallmarkbd/hallmark-api/pkg/apperror"
)

// maxItemNameLength caps catalog entry names in runes.
const maxItemNameLength = 120

// defaultItemNames seeds the catalog on startup. Entries are inserted
// if absent and never overwrite user-created ones.
var defaultItemNames = map[enum.ServiceType][]string{
	enum.ServiceTypeHallmark: {
		"Chain",
		"Ring",
		"Necklace",
		"Bangle",
		"Earring",
		"Bracelet",
		"Locket",
		"Nosepin",
		"Churi",
		"Tikli",
	},
	enum.ServiceTypeXray: {
		"Gold Test",
		"Gold Bar Test",
		"Ornament Test",
		"Purity Check",
	},
}

// ItemService manages the per-type catalog of allowed line-item names
type ItemService struct {
	itemRepo repository.ItemNameRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemNameRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// NormalizeItemName collapses internal whitespace runs to single spaces
// and trims the ends.
func NormalizeItemName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// ListByType returns the catalog entries for one service type sorted
// alphabetically
func (s *ItemService) ListByType(ctx context.Context, serviceType enum.ServiceType) ([]entity.ItemName, error) {
	if !serviceType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid item type")
	}
	return s.itemRepo.ListByType(ctx, serviceType)
}

// Create adds a catalog entry unless an equivalent one already exists.
// Equivalence is case and whitespace insensitive per service type.
func (s *ItemService) Create(ctx context.Context, serviceType enum.ServiceType, rawName string) (*entity.ItemName, error) {
	if !serviceType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid item type")
	}

	name := NormalizeItemName(rawName)
	if name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if utf8.RuneCountInString(name) > maxItemNameLength {
		return nil, apperror.NewBadRequestError("Item name is too long")
	}

	normalized := strings.ToLower(name)

	existing, err := s.itemRepo.GetByNormalized(ctx, serviceType, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Item already exists")
	}

	item := &entity.ItemName{
		Name:       name,
		Type:       serviceType,
		Normalized: normalized,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// EnsureDefaults seeds the built-in item names. It is idempotent and
// safe to run on every startup.
func (s *ItemService) EnsureDefaults(ctx context.Context) error {
	for serviceType, names := range defaultItemNames {
		for _, raw := range names {
			name := NormalizeItemName(raw)
			item := &entity.ItemName{
				Name:       name,
				Type:       serviceType,
				Normalized: strings.ToLower(name),
			}
			if err := s.itemRepo.CreateIfAbsent(ctx, item); err != nil {
				return err
			}
		}
	}
	return nil
}
