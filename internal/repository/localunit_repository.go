package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// LocalUnitRepository определяет интерфейс для работы с производственными единицами
type LocalUnitRepository interface {
	Create(ctx context.Context, unit *domain.LocalUnit) error
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.LocalUnit, error)
	GetByID(ctx context.Context, id int64) (*domain.LocalUnit, error)
	Update(ctx context.Context, unit *domain.LocalUnit) error
	Delete(ctx context.Context, id int64) error
}

type localUnitRepository struct {
	db *gorm.DB
}

// NewLocalUnitRepository создаёт новый экземпляр репозитория
func NewLocalUnitRepository(db *gorm.DB) LocalUnitRepository {
	return &localUnitRepository{db: db}
}

func (r *localUnitRepository) Create(ctx context.Context, unit *domain.LocalUnit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *localUnitRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.LocalUnit, error) {
	var units []domain.LocalUnit
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&units).Error
	return units, err
}

func (r *localUnitRepository) GetByID(ctx context.Context, id int64) (*domain.LocalUnit, error) {
	var unit domain.LocalUnit
	err := r.db.WithContext(ctx).First(&unit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocalUnitNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (r *localUnitRepository) Update(ctx context.Context, unit *domain.LocalUnit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

func (r *localUnitRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.LocalUnit{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLocalUnitNotFound
	}
	return nil
}
