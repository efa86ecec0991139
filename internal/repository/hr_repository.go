package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// AssignmentRow - строка выборки сотрудников отдела вместе с данными назначения
type AssignmentRow struct {
	HR         domain.HR
	Assignment domain.HRDepartment
}

// HRRepository определяет интерфейс для работы с сотрудниками и их назначениями
type HRRepository interface {
	Create(ctx context.Context, hr *domain.HR) error
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.HR, error)
	GetByID(ctx context.Context, id int64) (*domain.HR, error)
	Update(ctx context.Context, hr *domain.HR) error
	Delete(ctx context.Context, id int64) error

	CreateAssignment(ctx context.Context, assignment *domain.HRDepartment) error
	GetOpenAssignment(ctx context.Context, departmentID, hrID int64) (*domain.HRDepartment, error)
	HasAssignments(ctx context.Context, departmentID, hrID int64) (bool, error)
	GetAssignmentsByDepartment(ctx context.Context, departmentID int64) ([]AssignmentRow, error)
	DeleteAssignment(ctx context.Context, id int64) error
}

type hrRepository struct {
	db *gorm.DB
}

// NewHRRepository создаёт новый экземпляр репозитория
func NewHRRepository(db *gorm.DB) HRRepository {
	return &hrRepository{db: db}
}

func (r *hrRepository) Create(ctx context.Context, hr *domain.HR) error {
	return r.db.WithContext(ctx).Create(hr).Error
}

func (r *hrRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.HR, error) {
	var people []domain.HR
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&people).Error
	return people, err
}

func (r *hrRepository) GetByID(ctx context.Context, id int64) (*domain.HR, error) {
	var hr domain.HR
	err := r.db.WithContext(ctx).First(&hr, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHRNotFound
		}
		return nil, err
	}
	return &hr, nil
}

func (r *hrRepository) Update(ctx context.Context, hr *domain.HR) error {
	return r.db.WithContext(ctx).Save(hr).Error
}

func (r *hrRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.HR{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrHRNotFound
	}
	return nil
}

func (r *hrRepository) CreateAssignment(ctx context.Context, assignment *domain.HRDepartment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *hrRepository) GetOpenAssignment(ctx context.Context, departmentID, hrID int64) (*domain.HRDepartment, error) {
	var assignment domain.HRDepartment
	err := r.db.WithContext(ctx).
		Where("department_id = ? AND hr_id = ? AND end_date IS NULL", departmentID, hrID).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *hrRepository) HasAssignments(ctx context.Context, departmentID, hrID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.HRDepartment{}).
		Where("department_id = ? AND hr_id = ?", departmentID, hrID).
		Count(&count).Error
	return count > 0, err
}

func (r *hrRepository) GetAssignmentsByDepartment(ctx context.Context, departmentID int64) ([]AssignmentRow, error) {
	var assignments []domain.HRDepartment
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("start_date ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	rows := make([]AssignmentRow, 0, len(assignments))
	for _, a := range assignments {
		var hr domain.HR
		if err := r.db.WithContext(ctx).First(&hr, a.HRID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		rows = append(rows, AssignmentRow{HR: hr, Assignment: a})
	}
	return rows, nil
}

func (r *hrRepository) DeleteAssignment(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.HRDepartment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}
