package service

import (
	"context"
	"strings"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/google/uuid"
)

// EquipmentService определяет интерфейс бизнес-логики для оборудования
type EquipmentService interface {
	Create(ctx context.Context, req *dto.CreateEquipmentRequest) (*domain.Equipment, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Equipment, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEquipmentRequest) (*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	deptRepo      repository.DepartmentRepository
}

// NewEquipmentService создаёт новый экземпляр сервиса
func NewEquipmentService(equipmentRepo repository.EquipmentRepository, deptRepo repository.DepartmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo, deptRepo: deptRepo}
}

func (s *equipmentService) Create(ctx context.Context, req *dto.CreateEquipmentRequest) (*domain.Equipment, error) {
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	eq := &domain.Equipment{
		UUID:         uuid.NewString(),
		DepartmentID: req.DepartmentID,
		Version:      1,
	}
	if err := applyEquipmentFields(eq, req); err != nil {
		return nil, err
	}

	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Equipment, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.equipmentRepo.GetByDepartmentID(ctx, departmentID)
}

func (s *equipmentService) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Equipment, error) {
	return s.equipmentRepo.GetByCompanyID(ctx, companyID)
}

func (s *equipmentService) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) Update(ctx context.Context, id int64, req *dto.UpdateEquipmentRequest) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != 0 && req.DepartmentID != eq.DepartmentID {
		if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
		eq.DepartmentID = req.DepartmentID
	}

	if err := applyEquipmentFields(eq, req); err != nil {
		return nil, err
	}
	eq.Version++

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.equipmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.equipmentRepo.Delete(ctx, id)
}

// applyEquipmentFields переносит полный заменяющий набор полей запроса
func applyEquipmentFields(eq *domain.Equipment, req *dto.CreateEquipmentRequest) error {
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return err
	}
	firstTestDate, err := parseDate(req.FirstTestDate)
	if err != nil {
		return err
	}

	eq.Name = strings.TrimSpace(req.Name)
	eq.Type = req.Type
	eq.Brand = req.Brand
	eq.SerialNumber = req.SerialNumber
	eq.PurchaseDate = purchaseDate
	eq.FirstTestDate = firstTestDate
	return nil
}
