package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// PropertyRepository определяет интерфейс для работы с недвижимостью
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id int64) error
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository создаёт новый экземпляр репозитория
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var property domain.Property
	err := r.db.WithContext(ctx).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}
