package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// CompanyRepository определяет интерфейс для работы с компаниями
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetAll(ctx context.Context) ([]domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id int64) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository создаёт новый экземпляр репозитория
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) GetAll(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Company{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
