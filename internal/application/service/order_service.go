package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	"github.com/hallmarkbd/hallmark-api/internal/domain/repository"
	"github.com/hallmarkbd/hallmark-api/pkg/apperror"
	"github.com/hallmarkbd/hallmark-api/pkg/pagination"
	"github.com/hallmarkbd/hallmark-api/pkg/voucher"
)

// OrderService handles order aggregation and querying
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// LineAmountCents computes one line's amount in cents as
// round2(quantity x rate). Callers coerce unparsable inputs to 0 before
// reaching here, which yields a 0 amount.
func LineAmountCents(quantity, rate float64) int64 {
	return int64(math.Round(quantity * rate * 100))
}

// TotalCents sums the line amounts. Pure summation, so the result does
// not depend on item order.
func TotalCents(items []entity.OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// OrderItemInput is one line item of a draft order. Quantities and rates
// arrive already coerced to numbers (0 when the client sent garbage).
type OrderItemInput struct {
	ItemName   string
	Quantity   float64
	Rate       float64
	Weight     float64
	WeightUnit enum.WeightUnit
	Note       string
}

// complete reports whether the row carries enough to be priced.
func (i *OrderItemInput) complete() bool {
	return strings.TrimSpace(i.ItemName) != "" && i.Quantity > 0 && i.Rate > 0
}

// blank reports whether the row carries nothing at all.
func (i *OrderItemInput) blank() bool {
	return strings.TrimSpace(i.ItemName) == "" && i.Quantity == 0 && i.Rate == 0 && i.Weight == 0
}

// CreateOrderInput represents the create order input. The customer
// fields are a snapshot copied onto the order; they are not a reference.
type CreateOrderInput struct {
	Name         string
	CustomerID   string
	Company      string
	Contact      string
	Address      string
	Type         enum.ServiceType
	DeliveryDate *time.Time
	Items        []OrderItemInput
	ImagePath    *string
}

// CreateOrder validates the draft, recomputes every amount and the
// total server-side, generates a voucher and persists the order with
// its items in one transaction. Client-sent totals are ignored.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid service type")
	}

	var hasComplete bool
	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		if in.blank() {
			continue
		}
		if in.complete() {
			hasComplete = true
		}
		items = append(items, entity.OrderItem{
			ItemName:   strings.TrimSpace(in.ItemName),
			Quantity:   in.Quantity,
			Rate:       int64(math.Round(in.Rate * 100)),
			Weight:     in.Weight,
			WeightUnit: in.WeightUnit.Normalize(),
			Amount:     LineAmountCents(in.Quantity, in.Rate),
			Note:       in.Note,
		})
	}

	if !hasComplete {
		return nil, apperror.NewBadRequestError("Order must contain at least one item with a name, quantity and rate")
	}

	order := &entity.Order{
		Name:         strings.TrimSpace(input.Name),
		CustomerID:   strings.TrimSpace(input.CustomerID),
		Company:      strings.TrimSpace(input.Company),
		Contact:      strings.TrimSpace(input.Contact),
		Address:      strings.TrimSpace(input.Address),
		Type:         input.Type,
		Voucher:      voucher.Generate(),
		TotalAmount:  TotalCents(items),
		DeliveryDate: input.DeliveryDate,
		ImagePath:    input.ImagePath,
		Items:        items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns every order, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.List(ctx)
}

// ListOrdersPage returns one page of orders, newest first
func (s *OrderService) ListOrdersPage(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.ListPage(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DayBounds returns the inclusive [00:00:00.000, 23:59:59.999] window of
// the day containing t, in t's location. Both bounds are built from
// wall-clock components so days shortened or stretched by DST still end
// at 23:59:59.999.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
	return start, end
}

// ListOrdersByDay returns the orders created during the given day.
func (s *OrderService) ListOrdersByDay(ctx context.Context, day time.Time) ([]entity.Order, error) {
	start, end := DayBounds(day)
	return s.orderRepo.ListByCreatedRange(ctx, start, end)
}

// DeleteOrder removes an order permanently and returns the removed
// record. Deleting an already-deleted order reports NotFound.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return order, nil
}
