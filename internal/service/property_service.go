package service

import (
	"context"
	"strings"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/google/uuid"
)

// PropertyService определяет интерфейс бизнес-логики для недвижимости
type PropertyService interface {
	Create(ctx context.Context, req *dto.CreatePropertyRequest) (*domain.Property, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePropertyRequest) (*domain.Property, error)
	Delete(ctx context.Context, id int64) error
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	companyRepo  repository.CompanyRepository
}

// NewPropertyService создаёт новый экземпляр сервиса
func NewPropertyService(propertyRepo repository.PropertyRepository, companyRepo repository.CompanyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo, companyRepo: companyRepo}
}

func (s *propertyService) Create(ctx context.Context, req *dto.CreatePropertyRequest) (*domain.Property, error) {
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	property := &domain.Property{
		UUID:      uuid.NewString(),
		CompanyID: req.CompanyID,
		Version:   1,
	}
	applyPropertyFields(property, req)

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Property, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.propertyRepo.GetByCompanyID(ctx, companyID)
}

func (s *propertyService) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) Update(ctx context.Context, id int64, req *dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPropertyFields(property, req)
	property.Version++

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.propertyRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.propertyRepo.Delete(ctx, id)
}

// applyPropertyFields переносит полный заменяющий набор полей запроса
func applyPropertyFields(property *domain.Property, req *dto.CreatePropertyRequest) {
	property.Name = strings.TrimSpace(req.Name)
	property.Address = req.Address
	property.Municipality = req.Municipality
	property.PostalCode = req.PostalCode
	property.Province = req.Province
	property.Country = req.Country
	property.LandUse = req.LandUse
	property.CadastralSheet = req.CadastralSheet
	property.CadastralParcel = req.CadastralParcel
	property.CadastralUnit = req.CadastralUnit
	property.CadastralCategory = req.CadastralCategory
	property.EnergyClass = req.EnergyClass
	property.CadastralIncome = req.CadastralIncome
}
