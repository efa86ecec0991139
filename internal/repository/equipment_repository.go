package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// EquipmentRepository определяет интерфейс для работы с оборудованием
type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Equipment, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
}

type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository создаёт новый экземпляр репозитория
func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(eq).Error
}

func (r *equipmentRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *equipmentRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := r.db.WithContext(ctx).
		Joins("JOIN departments ON departments.id = equipments.department_id").
		Joins("JOIN local_units ON local_units.id = departments.local_unit_id").
		Where("local_units.company_id = ? AND departments.deleted_at IS NULL AND local_units.deleted_at IS NULL", companyID).
		Order("equipments.created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var eq domain.Equipment
	err := r.db.WithContext(ctx).First(&eq, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	return r.db.WithContext(ctx).Save(eq).Error
}

func (r *equipmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Equipment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}
