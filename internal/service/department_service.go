package service

import (
	"context"
	"strings"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/google/uuid"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
// и назначений сотрудников в них
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Department, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error

	ListHR(ctx context.Context, departmentID int64) ([]dto.HRAssignmentResponse, error)
	AssignHR(ctx context.Context, departmentID, hrID int64, req *dto.AssignHRRequest) (*domain.HRDepartment, error)
	RemoveHR(ctx context.Context, departmentID, hrID int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	unitRepo repository.LocalUnitRepository
	hrRepo   repository.HRRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(
	deptRepo repository.DepartmentRepository,
	unitRepo repository.LocalUnitRepository,
	hrRepo repository.HRRepository,
) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		unitRepo: unitRepo,
		hrRepo:   hrRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	name := strings.TrimSpace(req.Name)

	// Родительская производственная единица обязана существовать
	if _, err := s.unitRepo.GetByID(ctx, req.LocalUnitID); err != nil {
		return nil, err
	}

	// Имя отдела уникально в пределах производственной единицы
	exists, err := s.deptRepo.ExistsByNameAndLocalUnit(ctx, name, req.LocalUnitID, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept := &domain.Department{
		UUID:        uuid.NewString(),
		LocalUnitID: req.LocalUnitID,
		Name:        name,
		Version:     1,
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Department, error) {
	if _, err := s.unitRepo.GetByID(ctx, localUnitID); err != nil {
		return nil, err
	}
	return s.deptRepo.GetByLocalUnitID(ctx, localUnitID)
}

func (s *departmentService) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Department, error) {
	return s.deptRepo.GetByCompanyID(ctx, companyID)
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	localUnitID := dept.LocalUnitID
	if req.LocalUnitID != 0 && req.LocalUnitID != dept.LocalUnitID {
		if _, err := s.unitRepo.GetByID(ctx, req.LocalUnitID); err != nil {
			return nil, err
		}
		localUnitID = req.LocalUnitID
	}

	exists, err := s.deptRepo.ExistsByNameAndLocalUnit(ctx, name, localUnitID, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept.Name = name
	dept.LocalUnitID = localUnitID
	dept.Version++

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.deptRepo.Delete(ctx, id)
}

func (s *departmentService) ListHR(ctx context.Context, departmentID int64) ([]dto.HRAssignmentResponse, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	rows, err := s.hrRepo.GetAssignmentsByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.HRAssignmentResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.HRAssignmentResponse{
			ID:           row.HR.ID,
			UUID:         row.HR.UUID,
			Name:         row.HR.Name,
			Surname:      row.HR.Surname,
			FiscalCode:   row.HR.FiscalCode,
			Email:        row.HR.Email,
			HRID:         row.Assignment.HRID,
			DepartmentID: row.Assignment.DepartmentID,
			StartDate:    row.Assignment.StartDate,
			EndDate:      row.Assignment.EndDate,
		}
	}
	return resp, nil
}

func (s *departmentService) AssignHR(ctx context.Context, departmentID, hrID int64, req *dto.AssignHRRequest) (*domain.HRDepartment, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	if _, err := s.hrRepo.GetByID(ctx, hrID); err != nil {
		return nil, err
	}

	startDate, err := parseDate(&req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	// Не более одного открытого назначения на пару (сотрудник, отдел)
	if endDate == nil {
		_, err := s.hrRepo.GetOpenAssignment(ctx, departmentID, hrID)
		if err == nil {
			return nil, domain.ErrOpenAssignmentExists
		}
		if err != domain.ErrAssignmentNotFound {
			return nil, err
		}
	}

	assignment := &domain.HRDepartment{
		HRID:         hrID,
		DepartmentID: departmentID,
		StartDate:    *startDate,
		EndDate:      endDate,
	}

	if err := s.hrRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *departmentService) RemoveHR(ctx context.Context, departmentID, hrID int64) error {
	if _, err := s.deptRepo.GetByID(ctx, departmentID); err != nil {
		return err
	}

	// Удалить можно только открытое назначение:
	// закрытые образуют неизменяемую историю
	assignment, err := s.hrRepo.GetOpenAssignment(ctx, departmentID, hrID)
	if err != nil {
		if err == domain.ErrAssignmentNotFound {
			exists, hasErr := s.hrRepo.HasAssignments(ctx, departmentID, hrID)
			if hasErr != nil {
				return hasErr
			}
			if exists {
				return domain.ErrAssignmentClosed
			}
			return domain.ErrAssignmentNotFound
		}
		return err
	}

	return s.hrRepo.DeleteAssignment(ctx, assignment.ID)
}
