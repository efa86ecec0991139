package console

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"

	"github.com/business-console-api/pkg/client"
)

// ViewMode - способ отображения коллекции документов
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewRow  ViewMode = "row"
)

// SortKey - ключ сортировки документов
type SortKey string

const (
	SortName SortKey = "name"
	SortDate SortKey = "date"
	SortSize SortKey = "size"
)

// skeletonCount - фиксированное число заглушек при загрузке,
// не зависит от итогового размера коллекции
const skeletonCount = 4

// gridLabelLimit - длина имени файла в карточке сетки до усечения
const gridLabelLimit = 8

// DocumentAPI - операции над документами, нужные контроллеру.
// Реализуется *client.DocumentResource
type DocumentAPI interface {
	ListByRef(ctx context.Context, refID int64, moduleName string) ([]client.Document, error)
	Get(ctx context.Context, id int64) (*client.Document, error)
	Upload(ctx context.Context, scope client.DocumentScope, fileName, description string, content io.Reader) (*client.Document, error)
	Rename(ctx context.Context, id int64, name, description string) (*client.Document, error)
	Download(ctx context.Context, id int64, w io.Writer) (*client.Document, error)
	Delete(ctx context.Context, id int64) error
}

// UploadBuffer держит ровно один файл до отправки
type UploadBuffer struct {
	FileName    string
	Description string
	Content     []byte
}

// FileConfig - зависимости контроллера документов
type FileConfig struct {
	API   DocumentAPI
	Scope client.DocumentScope

	// OnSubmit вызывается после успешной загрузки, хостинговая
	// страница перечитывает свои данные
	OnSubmit func()
	// OnDeleted вызывается после успешного удаления
	OnDeleted func()

	Notifier  Notifier
	Confirmer Confirmer
}

// FileController управляет коллекцией документов одной сущности
type FileController struct {
	cfg FileConfig

	mu         sync.Mutex
	files      []client.Document
	view       ViewMode
	sortKey    SortKey
	selected   *client.Document
	buffer     *UploadBuffer
	loading    bool
	generation uint64
}

// NewFileController создаёт контроллер документов
func NewFileController(cfg FileConfig) *FileController {
	return &FileController{cfg: cfg, view: ViewGrid, sortKey: SortName}
}

// Files возвращает снимок коллекции в текущем порядке сортировки
func (c *FileController) Files() []client.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	files := make([]client.Document, len(c.files))
	copy(files, c.files)
	return files
}

// View возвращает текущий способ отображения
func (c *FileController) View() ViewMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// SetView переключает отображение. Выбор файла при этом сохраняется
func (c *FileController) SetView(view ViewMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
}

// Sort возвращает текущий ключ сортировки
func (c *FileController) Sort() SortKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortKey
}

// Selected возвращает выбранный файл, nil если выбора нет
func (c *FileController) Selected() *client.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Buffer возвращает содержимое буфера загрузки
func (c *FileController) Buffer() *UploadBuffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer
}

// Loading сообщает, идёт ли загрузка коллекции
func (c *FileController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Refresh перечитывает коллекцию. Устаревший ответ отбрасывается
func (c *FileController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.loading = true
	c.mu.Unlock()

	files, err := c.cfg.API.ListByRef(ctx, c.cfg.Scope.RefID, c.cfg.Scope.ModuleName)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.loading = false

	if err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to load documents: " + err.Error()})
		return
	}

	c.files = files
	c.sortLocked()
}

// SortBy устойчиво сортирует коллекцию и сбрасывает выбор.
// Имя сортируется лексикографически, дата и размер по возрастанию
func (c *FileController) SortBy(key SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortKey = key
	c.selected = nil
	c.sortLocked()
}

func (c *FileController) sortLocked() {
	switch c.sortKey {
	case SortDate:
		sort.SliceStable(c.files, func(i, j int) bool {
			return c.files[i].CreatedAt.Before(c.files[j].CreatedAt)
		})
	case SortSize:
		sort.SliceStable(c.files, func(i, j int) bool {
			return c.files[i].FileSize < c.files[j].FileSize
		})
	default:
		sort.SliceStable(c.files, func(i, j int) bool {
			return c.files[i].Name < c.files[j].Name
		})
	}
}

// Select переключает выбор: повторный выбор того же файла снимает его
func (c *FileController) Select(file client.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected != nil && c.selected.ID == file.ID {
		c.selected = nil
		return
	}
	f := file
	c.selected = &f
}

// Label возвращает подпись карточки файла: в сетке имя усекается,
// пока файл не выбран
func (c *FileController) Label(file client.Document) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view == ViewRow {
		return file.Name
	}
	if c.selected != nil && c.selected.ID == file.ID {
		return file.Name
	}

	runes := []rune(file.Name)
	if len(runes) <= gridLabelLimit {
		return file.Name
	}
	return string(runes[:gridLabelLimit]) + "…"
}

// StageUpload помещает файл в буфер. В буфере живёт ровно один файл,
// повторный вызов замещает предыдущий
func (c *FileController) StageUpload(fileName, description string, content []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffer = &UploadBuffer{FileName: fileName, Description: description, Content: content}
}

// SubmitUpload отправляет буфер на сервер. Успех очищает буфер и
// дёргает OnSubmit; неудача оставляет буфер на месте
func (c *FileController) SubmitUpload(ctx context.Context) {
	c.mu.Lock()
	buffer := c.buffer
	c.mu.Unlock()

	if buffer == nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityWarning, Message: "no file staged for upload"})
		return
	}

	_, err := c.cfg.API.Upload(ctx, c.cfg.Scope, buffer.FileName, buffer.Description, bytes.NewReader(buffer.Content))
	if err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to upload: " + err.Error()})
		return
	}

	c.mu.Lock()
	c.buffer = nil
	c.mu.Unlock()

	if c.cfg.OnSubmit != nil {
		c.cfg.OnSubmit()
	}
	c.Refresh(ctx)
}

// Rename обновляет имя и описание документа без повторной загрузки
func (c *FileController) Rename(ctx context.Context, id int64, name, description string) {
	if _, err := c.cfg.API.Rename(ctx, id, name, description); err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to rename: " + err.Error()})
		return
	}
	c.Refresh(ctx)
}

// Download скачивает содержимое документа в w. Метаданные
// перечитываются внутри клиента, путь из снимка не используется
func (c *FileController) Download(ctx context.Context, id int64, w io.Writer) (*client.Document, error) {
	doc, err := c.cfg.API.Download(ctx, id, w)
	if err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to download: " + err.Error()})
		return nil, err
	}
	return doc, nil
}

// RequestDelete удаляет документ после явного подтверждения.
// Без подтверждения запрос удаления не отправляется
func (c *FileController) RequestDelete(ctx context.Context, id int64, title string) {
	if !c.cfg.Confirmer.Confirm(title) {
		return
	}

	if err := c.cfg.API.Delete(ctx, id); err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to delete: " + err.Error()})
		return
	}

	c.mu.Lock()
	c.selected = nil
	c.buffer = nil
	c.mu.Unlock()

	if c.cfg.OnDeleted != nil {
		c.cfg.OnDeleted()
	}
	c.Refresh(ctx)
}

// EmptyState сообщает, что коллекция загружена и пуста:
// вместо пустой сетки рендерится явная заглушка
func (c *FileController) EmptyState() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.loading && len(c.files) == 0
}

// SkeletonCount возвращает число заглушек на время загрузки
func (c *FileController) SkeletonCount() int {
	return skeletonCount
}
