package services

import (
	"context"
	"fmt"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/repository"
)

// CustomerService, müşteri CRUD iş kuralları.
type CustomerService interface {
	Create(ctx context.Context, userID string, req *models.CreateCustomerRequest) (*models.Customer, error)
	Get(ctx context.Context, userID, id string) (*models.Customer, error)
	List(ctx context.Context, userID string) ([]models.Customer, error)
	Update(ctx context.Context, userID, id string, req *models.CreateCustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, userID, id string) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	statsCache   StatsInvalidator
}

// NewCustomerService, constructor. statsCache nil olabilir (testlerde).
func NewCustomerService(customerRepo repository.CustomerRepository, statsCache StatsInvalidator) CustomerService {
	return &customerService{customerRepo: customerRepo, statsCache: statsCache}
}

func (s *customerService) Create(ctx context.Context, userID string, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	customer := &models.Customer{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
		TaxOffice: req.TaxOffice,
		Notes:     req.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if s.statsCache != nil {
		s.statsCache.Invalidate(userID)
	}

	return customer, nil
}

func (s *customerService) Get(ctx context.Context, userID, id string) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, userID, id)
}

func (s *customerService) List(ctx context.Context, userID string) ([]models.Customer, error) {
	return s.customerRepo.ListByUser(ctx, userID)
}

// Update, müşteriyi komple değiştirir — orijinal API'de create ve update
// aynı body'yi kullanır, partial update yoktur.
func (s *customerService) Update(ctx context.Context, userID, id string, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	// Önce varlık ve sahiplik kontrolü — yoksa 404
	existing, err := s.customerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Company = req.Company
	existing.Address = req.Address
	existing.TaxNumber = req.TaxNumber
	existing.TaxOffice = req.TaxOffice
	existing.Notes = req.Notes

	if err := s.customerRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *customerService) Delete(ctx context.Context, userID, id string) error {
	if err := s.customerRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	if s.statsCache != nil {
		s.statsCache.Invalidate(userID)
	}

	return nil
}
