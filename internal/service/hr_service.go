package service

import (
	"context"
	"strings"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/google/uuid"
)

// HRService определяет интерфейс бизнес-логики для сотрудников
type HRService interface {
	Create(ctx context.Context, req *dto.CreateHRRequest) (*domain.HR, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.HR, error)
	GetByID(ctx context.Context, id int64) (*domain.HR, error)
	Update(ctx context.Context, id int64, req *dto.UpdateHRRequest) (*domain.HR, error)
	Delete(ctx context.Context, id int64) error
}

type hrService struct {
	hrRepo      repository.HRRepository
	companyRepo repository.CompanyRepository
}

// NewHRService создаёт новый экземпляр сервиса
func NewHRService(hrRepo repository.HRRepository, companyRepo repository.CompanyRepository) HRService {
	return &hrService{hrRepo: hrRepo, companyRepo: companyRepo}
}

func (s *hrService) Create(ctx context.Context, req *dto.CreateHRRequest) (*domain.HR, error) {
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	hr := &domain.HR{
		UUID:      uuid.NewString(),
		CompanyID: req.CompanyID,
		Version:   1,
	}
	if err := applyHRFields(hr, req); err != nil {
		return nil, err
	}

	if err := s.hrRepo.Create(ctx, hr); err != nil {
		return nil, err
	}
	return hr, nil
}

func (s *hrService) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.HR, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.hrRepo.GetByCompanyID(ctx, companyID)
}

func (s *hrService) GetByID(ctx context.Context, id int64) (*domain.HR, error) {
	return s.hrRepo.GetByID(ctx, id)
}

func (s *hrService) Update(ctx context.Context, id int64, req *dto.UpdateHRRequest) (*domain.HR, error) {
	hr, err := s.hrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyHRFields(hr, req); err != nil {
		return nil, err
	}
	hr.Version++

	if err := s.hrRepo.Update(ctx, hr); err != nil {
		return nil, err
	}
	return hr, nil
}

func (s *hrService) Delete(ctx context.Context, id int64) error {
	if _, err := s.hrRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.hrRepo.Delete(ctx, id)
}

// applyHRFields переносит полный заменяющий набор полей запроса
func applyHRFields(hr *domain.HR, req *dto.CreateHRRequest) error {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return err
	}
	recruitmentDate, err := parseDate(req.RecruitmentDate)
	if err != nil {
		return err
	}

	hr.Name = strings.TrimSpace(req.Name)
	hr.Surname = strings.TrimSpace(req.Surname)
	hr.FiscalCode = req.FiscalCode
	hr.Email = req.Email
	hr.Phone = req.Phone
	hr.BirthPlace = req.BirthPlace
	hr.BirthDate = birthDate
	hr.Nationality = req.Nationality
	hr.RecruitmentDate = recruitmentDate
	hr.ContractQualification = req.ContractQualification
	hr.ContractLevel = req.ContractLevel
	hr.Duty = req.Duty
	hr.IsApprentice = req.IsApprentice
	hr.Address = req.Address
	hr.Municipality = req.Municipality
	hr.Province = req.Province
	hr.PostalCode = req.PostalCode
	hr.Country = req.Country
	return nil
}
