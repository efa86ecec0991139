package service

import (
	"context"
	"strings"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/google/uuid"
)

// LocalUnitService определяет интерфейс бизнес-логики для производственных единиц
type LocalUnitService interface {
	Create(ctx context.Context, req *dto.CreateLocalUnitRequest) (*domain.LocalUnit, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.LocalUnit, error)
	GetByID(ctx context.Context, id int64) (*domain.LocalUnit, error)
	Update(ctx context.Context, id int64, req *dto.UpdateLocalUnitRequest) (*domain.LocalUnit, error)
	Delete(ctx context.Context, id int64) error
}

type localUnitService struct {
	unitRepo     repository.LocalUnitRepository
	companyRepo  repository.CompanyRepository
	propertyRepo repository.PropertyRepository
}

// NewLocalUnitService создаёт новый экземпляр сервиса
func NewLocalUnitService(
	unitRepo repository.LocalUnitRepository,
	companyRepo repository.CompanyRepository,
	propertyRepo repository.PropertyRepository,
) LocalUnitService {
	return &localUnitService{
		unitRepo:     unitRepo,
		companyRepo:  companyRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *localUnitService) Create(ctx context.Context, req *dto.CreateLocalUnitRequest) (*domain.LocalUnit, error) {
	// Родительская компания обязана существовать
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	if req.PropertyID != nil {
		if _, err := s.propertyRepo.GetByID(ctx, *req.PropertyID); err != nil {
			return nil, err
		}
	}

	unit := &domain.LocalUnit{
		UUID:      uuid.NewString(),
		CompanyID: req.CompanyID,
		Version:   1,
	}
	applyLocalUnitFields(unit, req)

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *localUnitService) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.LocalUnit, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.unitRepo.GetByCompanyID(ctx, companyID)
}

func (s *localUnitService) GetByID(ctx context.Context, id int64) (*domain.LocalUnit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

func (s *localUnitService) Update(ctx context.Context, id int64, req *dto.UpdateLocalUnitRequest) (*domain.LocalUnit, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PropertyID != nil {
		if _, err := s.propertyRepo.GetByID(ctx, *req.PropertyID); err != nil {
			return nil, err
		}
	}

	applyLocalUnitFields(unit, req)
	unit.Version++

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *localUnitService) Delete(ctx context.Context, id int64) error {
	if _, err := s.unitRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.unitRepo.Delete(ctx, id)
}

// applyLocalUnitFields переносит полный заменяющий набор полей запроса
func applyLocalUnitFields(unit *domain.LocalUnit, req *dto.CreateLocalUnitRequest) {
	unit.PropertyID = req.PropertyID
	unit.Name = strings.TrimSpace(req.Name)
	unit.Email = req.Email
	unit.Address = req.Address
	unit.Municipality = req.Municipality
	unit.Province = req.Province
	unit.PostalCode = req.PostalCode
	unit.Phone = req.Phone
	unit.Rea = req.Rea
	unit.AtecoCode = req.AtecoCode
	unit.MainActivity = req.MainActivity
	unit.Cciaa = req.Cciaa
	unit.IsArtisan = req.IsArtisan
	unit.IsAgricultural = req.IsAgricultural
	unit.SafetyManager = req.SafetyManager
	unit.Employer = req.Employer
}
