package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/internal/domain/repository"
	"github.com/hallmarkbd/hallmark-api/pkg/apperror"
)

// contactDigits is the exact digit count a contact number must have.
const contactDigits = 11

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// NormalizeContact strips everything but digits and requires exactly 11
// of them. The result is text so leading zeros survive storage.
func NormalizeContact(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != contactDigits {
		return "", apperror.NewBadRequestError("Contact number must be exactly 11 digits")
	}
	return digits, nil
}

// cleanCompanies drops blank entries while preserving order.
func cleanCompanies(companies []string) []string {
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name      string
	Contact   string
	Companies []string
	Address   string
	ImagePath *string
}

// CreateCustomer registers a customer. The sequential customer number is
// assigned by the repository inside the create transaction; any number
// the client predicted is ignored.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	contact, err := NormalizeContact(input.Contact)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	companies := cleanCompanies(input.Companies)
	if len(companies) == 0 {
		return nil, apperror.NewBadRequestError("At least one company is required")
	}

	customer := &entity.Customer{
		Name:      name,
		Contact:   contact,
		Companies: companies,
		Address:   strings.TrimSpace(input.Address),
		ImagePath: input.ImagePath,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns every customer ordered by customer number
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID        uuid.UUID
	Name      *string
	Contact   *string
	Companies []string
	Address   *string
	ImagePath *string
}

// UpdateCustomer updates a customer. The companies list, when present,
// replaces the stored list wholesale.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Customer name is required")
		}
		customer.Name = name
	}
	if input.Contact != nil {
		contact, err := NormalizeContact(*input.Contact)
		if err != nil {
			return nil, err
		}
		customer.Contact = contact
	}
	if input.Companies != nil {
		companies := cleanCompanies(input.Companies)
		if len(companies) == 0 {
			return nil, apperror.NewBadRequestError("At least one company is required")
		}
		customer.Companies = companies
	}
	if input.Address != nil {
		customer.Address = strings.TrimSpace(*input.Address)
	}
	if input.ImagePath != nil {
		customer.ImagePath = input.ImagePath
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return customer, nil
}

// LastCustomerNo returns the highest assigned customer number, 0 when
// none exist. Kept for frontend compatibility; numbers are assigned
// server-side on create.
func (s *CustomerService) LastCustomerNo(ctx context.Context) (int, error) {
	return s.customerRepo.LastCustomerNo(ctx)
}
