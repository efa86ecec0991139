package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/repository"
	"github.com/business-console-api/internal/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DocumentUpload - буфер одной загрузки: ровно один файл и его метаданные
type DocumentUpload struct {
	FileName    string
	Description string
	Content     io.Reader
}

// DocumentService определяет интерфейс бизнес-логики для документов.
// Область видимости документа задаётся полиморфной парой (RefID, ModuleID)
type DocumentService interface {
	ListByRef(ctx context.Context, refID, moduleID int64) ([]domain.Document, error)
	ListByCompanyID(ctx context.Context, companyID int64) ([]domain.Document, error)
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	Upload(ctx context.Context, scope *dto.CreateDocumentQuery, upload *DocumentUpload) (*domain.Document, error)
	Rename(ctx context.Context, id int64, req *dto.UpdateDocumentRequest) (*domain.Document, error)
	OpenContent(ctx context.Context, id int64) (*domain.Document, io.ReadCloser, error)
	Delete(ctx context.Context, id int64) error

	ResolveModuleByName(ctx context.Context, name string) (*domain.Module, error)
	GetModuleByID(ctx context.Context, id int64) (*domain.Module, error)
}

type documentService struct {
	docRepo     repository.DocumentRepository
	moduleRepo  repository.ModuleRepository
	companyRepo repository.CompanyRepository
	files       storage.FileStorage

	// Справочник разделов неизменяем во время работы, имя -> модуль
	// разрешается один раз и кэшируется в процессе
	moduleMu    sync.RWMutex
	moduleCache map[string]*domain.Module
}

// NewDocumentService создаёт новый экземпляр сервиса
func NewDocumentService(
	docRepo repository.DocumentRepository,
	moduleRepo repository.ModuleRepository,
	companyRepo repository.CompanyRepository,
	files storage.FileStorage,
) DocumentService {
	return &documentService{
		docRepo:     docRepo,
		moduleRepo:  moduleRepo,
		companyRepo: companyRepo,
		files:       files,
		moduleCache: make(map[string]*domain.Module),
	}
}

func (s *documentService) ListByRef(ctx context.Context, refID, moduleID int64) ([]domain.Document, error) {
	// Разрешение модуля обязано состояться до выборки,
	// иначе полиморфная ссылка не определена
	if _, err := s.moduleRepo.GetByID(ctx, moduleID); err != nil {
		return nil, err
	}
	return s.docRepo.GetByRef(ctx, refID, moduleID)
}

func (s *documentService) ListByCompanyID(ctx context.Context, companyID int64) ([]domain.Document, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.docRepo.GetByCompanyID(ctx, companyID)
}

func (s *documentService) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

func (s *documentService) Upload(ctx context.Context, scope *dto.CreateDocumentQuery, upload *DocumentUpload) (*domain.Document, error) {
	if _, err := s.companyRepo.GetByID(ctx, scope.CompanyID); err != nil {
		return nil, err
	}
	if _, err := s.moduleRepo.GetByID(ctx, scope.ModuleID); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(upload.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(content) == 0 {
		return nil, domain.ErrEmptyFile
	}

	// Тип определяется по содержимому, а не по расширению имени
	mime := mimetype.Detect(content)
	key := uuid.NewString() + filepath.Ext(upload.FileName)

	size, err := s.files.Save(ctx, key, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := &domain.Document{
		UUID:        uuid.NewString(),
		CompanyID:   scope.CompanyID,
		RefID:       scope.RefID,
		ModuleID:    scope.ModuleID,
		Name:        strings.TrimSpace(upload.FileName),
		Description: upload.Description,
		Path:        key,
		FileType:    mime.String(),
		FileSize:    size,
		Version:     1,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		// Запись не создана, файл не должен остаться сиротой
		_ = s.files.Delete(ctx, key)
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Rename(ctx context.Context, id int64, req *dto.UpdateDocumentRequest) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Обновляются только метаданные, бинарное содержимое не трогаем
	doc.Name = strings.TrimSpace(req.Name)
	doc.Description = req.Description
	doc.Version++

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) OpenContent(ctx context.Context, id int64) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.files.Open(ctx, doc.Path)
	if err != nil {
		if err == storage.ErrNotFound {
			return nil, nil, domain.ErrDocumentNotFound
		}
		return nil, nil, err
	}
	return doc, rc, nil
}

func (s *documentService) Delete(ctx context.Context, id int64) error {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Запись удалена, потеря файла в хранилище уже не ошибка операции
	_ = s.files.Delete(ctx, doc.Path)
	return nil
}

func (s *documentService) ResolveModuleByName(ctx context.Context, name string) (*domain.Module, error) {
	s.moduleMu.RLock()
	cached, ok := s.moduleCache[name]
	s.moduleMu.RUnlock()
	if ok {
		return cached, nil
	}

	module, err := s.moduleRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	s.moduleMu.Lock()
	s.moduleCache[name] = module
	s.moduleMu.Unlock()
	return module, nil
}

func (s *documentService) GetModuleByID(ctx context.Context, id int64) (*domain.Module, error) {
	return s.moduleRepo.GetByID(ctx, id)
}
