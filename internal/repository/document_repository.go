package repository

import (
	"context"
	"errors"

	"github.com/business-console-api/internal/domain"
	"gorm.io/gorm"
)

// DocumentRepository определяет интерфейс для работы с документами
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByRef(ctx context.Context, refID, moduleID int64) ([]domain.Document, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Document, error)
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id int64) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository создаёт новый экземпляр репозитория
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByRef(ctx context.Context, refID, moduleID int64) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.WithContext(ctx).
		Where("ref_id = ? AND module_id = ?", refID, moduleID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.WithContext(ctx).First(&doc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *domain.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Document{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
