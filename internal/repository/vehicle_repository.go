package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// VehicleRepository определяет интерфейс для работы с транспортными средствами
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Vehicle, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository создаёт новый экземпляр репозитория
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *vehicleRepository) GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).
		Where("local_unit_id = ?", localUnitID).
		Order("created_at ASC").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).
		Joins("JOIN local_units ON local_units.id = vehicles.local_unit_id").
		Where("local_units.company_id = ? AND local_units.deleted_at IS NULL", companyID).
		Order("vehicles.created_at ASC").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Vehicle{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
