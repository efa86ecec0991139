package console

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Mode - состояние карточки записи
type Mode int

const (
	// ModeView - просмотр, начальное состояние
	ModeView Mode = iota
	// ModeEdit - редактирование
	ModeEdit
)

// DetailConfig - зависимости контроллера карточки
type DetailConfig[T any] struct {
	// Fetch загружает основную запись
	Fetch func(ctx context.Context, id int64) (*T, error)
	// Update отправляет полный заменяющий набор полей
	Update func(ctx context.Context, id int64, payload any) (*T, error)
	// Delete удаляет запись
	Delete func(ctx context.Context, id int64) error

	// Dependent загружается после основной записи, поскольку зависит
	// от её полей (например, производственная единица отдела)
	Dependent func(ctx context.Context, record *T) error
	// Related - независимые связанные коллекции, загружаются
	// параллельно после основной записи
	Related []func(ctx context.Context, record *T) error

	// OnDeleted вызывается после успешного удаления, хостинговая
	// страница использует его для навигации к списку
	OnDeleted func()

	Notifier  Notifier
	Confirmer Confirmer
}

// DetailController управляет карточкой одной записи
type DetailController[T any] struct {
	cfg DetailConfig[T]
	id  int64

	mu         sync.Mutex
	record     *T
	mode       Mode
	loading    bool
	generation uint64
}

// NewDetailController создаёт контроллер карточки записи id
func NewDetailController[T any](id int64, cfg DetailConfig[T]) *DetailController[T] {
	return &DetailController[T]{cfg: cfg, id: id}
}

// Record возвращает текущую запись, nil до первой загрузки
func (c *DetailController[T]) Record() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// Mode возвращает текущее состояние карточки
func (c *DetailController[T]) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Loading сообщает, идёт ли загрузка
func (c *DetailController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Refresh загружает запись, затем зависимую выборку, затем
// независимые коллекции параллельно. Устаревший ответ отбрасывается
func (c *DetailController[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.loading = true
	c.mu.Unlock()

	record, err := c.fetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.loading = false

	if err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to load record: " + err.Error()})
		return
	}

	c.record = record
}

func (c *DetailController[T]) fetchAll(ctx context.Context) (*T, error) {
	record, err := c.cfg.Fetch(ctx, c.id)
	if err != nil {
		return nil, err
	}

	// Зависимая выборка идёт строго после основной записи
	if c.cfg.Dependent != nil {
		if err := c.cfg.Dependent(ctx, record); err != nil {
			return nil, err
		}
	}

	if len(c.cfg.Related) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, fetch := range c.cfg.Related {
			g.Go(func() error {
				return fetch(gctx, record)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// Edit переводит карточку в режим редактирования
func (c *DetailController[T]) Edit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeEdit
}

// Cancel возвращает карточку в просмотр без сохранения
func (c *DetailController[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeView
}

// SubmitEdit сохраняет полный заменяющий набор полей. Успех
// перечитывает запись и закрывает редактирование; неудача оставляет
// форму открытой с введёнными данными
func (c *DetailController[T]) SubmitEdit(ctx context.Context, payload any) {
	if _, err := c.cfg.Update(ctx, c.id, payload); err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to save: " + err.Error()})
		return
	}

	c.mu.Lock()
	c.mode = ModeView
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Delete удаляет запись после явного подтверждения и уводит
// пользователя со страницы через OnDeleted
func (c *DetailController[T]) Delete(ctx context.Context, title string) {
	if !c.cfg.Confirmer.Confirm(title) {
		return
	}

	if err := c.cfg.Delete(ctx, c.id); err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to delete: " + err.Error()})
		return
	}

	if c.cfg.OnDeleted != nil {
		c.cfg.OnDeleted()
	}
}
