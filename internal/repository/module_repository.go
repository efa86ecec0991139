package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// ModuleRepository определяет интерфейс для справочника разделов консоли
type ModuleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Module, error)
	GetByName(ctx context.Context, name string) (*domain.Module, error)
}

type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository создаёт новый экземпляр репозитория
func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) GetByID(ctx context.Context, id int64) (*domain.Module, error) {
	var module domain.Module
	err := r.db.WithContext(ctx).First(&module, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) GetByName(ctx context.Context, name string) (*domain.Module, error) {
	var module domain.Module
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&module).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, err
	}
	return &module, nil
}
