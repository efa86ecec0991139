package service

import (
	"context"
	"strings"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/google/uuid"
)

// CompanyService определяет интерфейс бизнес-логики для компаний
type CompanyService interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*domain.Company, error)
	GetAll(ctx context.Context) ([]domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService создаёт новый экземпляр сервиса
func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*domain.Company, error) {
	company := &domain.Company{
		UUID:                   uuid.NewString(),
		Name:                   strings.TrimSpace(req.Name),
		Address:                req.Address,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Province:               req.Province,
		PostalCode:             req.PostalCode,
		FiscalCode:             req.FiscalCode,
		VatCode:                req.VatCode,
		RegisteredMunicipality: req.RegisteredMunicipality,
		Version:                1,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetAll(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

func (s *companyService) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyService) Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Полная замена: не переданное поле очищается, частичных обновлений нет
	company.Name = strings.TrimSpace(req.Name)
	company.Address = req.Address
	company.Email = req.Email
	company.Phone = req.Phone
	company.Province = req.Province
	company.PostalCode = req.PostalCode
	company.FiscalCode = req.FiscalCode
	company.VatCode = req.VatCode
	company.RegisteredMunicipality = req.RegisteredMunicipality
	company.Version++

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.companyRepo.Delete(ctx, id)
}
