package console

import (
	"context"
	"sync"
	"time"
)

// ListConfig - зависимости контроллера списка
type ListConfig[T any] struct {
	// Fetch возвращает полный список. Контроллер всегда перечитывает
	// список целиком, локальных правок нет
	Fetch func(ctx context.Context) ([]T, error)
	// Create создаёт запись, идентификатор родителя входит в payload
	Create func(ctx context.Context, payload any) error
	// Delete удаляет запись
	Delete func(ctx context.Context, id int64) error
	// Open открывает карточку записи, вызывается действием строки
	Open func(id int64)

	Notifier  Notifier
	Confirmer Confirmer
}

// ListController управляет состоянием страницы списка
type ListController[T any] struct {
	cfg ListConfig[T]

	mu              sync.Mutex
	items           []T
	loading         bool
	lastRefreshedAt time.Time
	dialogOpen      bool

	// generation защищает от гонки обновлений: ответ устаревшего
	// запроса не должен перетереть более свежее состояние
	generation uint64
}

// NewListController создаёт контроллер списка
func NewListController[T any](cfg ListConfig[T]) *ListController[T] {
	return &ListController[T]{cfg: cfg}
}

// Items возвращает снимок текущего списка
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Loading сообщает, идёт ли загрузка
func (c *ListController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// LastRefreshedAt возвращает время последнего успешного обновления
func (c *ListController[T]) LastRefreshedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRefreshedAt
}

// DialogOpen сообщает, открыт ли диалог создания
func (c *ListController[T]) DialogOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogOpen
}

// Refresh перечитывает список. Устаревший ответ отбрасывается,
// при ошибке список не меняется и пользователь получает уведомление
func (c *ListController[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.loading = true
	c.mu.Unlock()

	items, err := c.cfg.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// Пока ждали ответ, стартовало более свежее обновление
		return
	}
	c.loading = false

	if err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to load list: " + err.Error()})
		return
	}

	c.items = items
	c.lastRefreshedAt = time.Now()
}

// OpenCreateDialog открывает диалог создания
func (c *ListController[T]) OpenCreateDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogOpen = true
}

// CancelCreate закрывает диалог без создания записи
func (c *ListController[T]) CancelCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogOpen = false
}

// SubmitCreate создаёт запись. Успех закрывает диалог и перечитывает
// список ровно один раз; неудача оставляет диалог открытым, чтобы
// пользователь не потерял введённые данные
func (c *ListController[T]) SubmitCreate(ctx context.Context, payload any) {
	if err := c.cfg.Create(ctx, payload); err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to create: " + err.Error()})
		return
	}

	c.mu.Lock()
	c.dialogOpen = false
	c.mu.Unlock()

	c.Refresh(ctx)
}

// RequestDelete удаляет запись после явного подтверждения.
// Без подтверждения запрос удаления не отправляется
func (c *ListController[T]) RequestDelete(ctx context.Context, id int64, title string) {
	if !c.cfg.Confirmer.Confirm(title) {
		return
	}

	if err := c.cfg.Delete(ctx, id); err != nil {
		c.cfg.Notifier.Notify(Alert{Severity: SeverityError, Message: "failed to delete: " + err.Error()})
		return
	}

	c.Refresh(ctx)
}

// OpenDetail переходит к карточке записи
func (c *ListController[T]) OpenDetail(id int64) {
	if c.cfg.Open != nil {
		c.cfg.Open(id)
	}
}
