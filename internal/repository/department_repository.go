package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с отделами
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Department, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
	ExistsByNameAndLocalUnit(ctx context.Context, name string, localUnitID int64, excludeID *int64) (bool, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepository) GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).
		Where("local_unit_id = ?", localUnitID).
		Order("created_at ASC").
		Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).
		Joins("JOIN local_units ON local_units.id = departments.local_unit_id").
		Where("local_units.company_id = ? AND local_units.deleted_at IS NULL", companyID).
		Order("departments.created_at ASC").
		Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepository) ExistsByNameAndLocalUnit(ctx context.Context, name string, localUnitID int64, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Department{}).
		Where("name = ? AND local_unit_id = ?", name, localUnitID)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}
