// Package console - контроллеры страниц консоли: список, карточка,
// коллекция документов. Контроллеры не знают о конкретном UI, внешние
// взаимодействия проходят через внедряемые capability-интерфейсы.
package console

import "sync"

// Severity - важность уведомления
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert - неблокирующее уведомление пользователю
type Alert struct {
	Severity Severity
	Message  string
}

// Notifier доставляет уведомления. Контроллеры никогда не глотают
// ошибки молча: любая неудача операции проходит через Notify
type Notifier interface {
	Notify(alert Alert)
}

// NotifierFunc адаптирует функцию под интерфейс Notifier
type NotifierFunc func(Alert)

func (f NotifierFunc) Notify(alert Alert) { f(alert) }

// Confirmer запрашивает явное подтверждение разрушительного действия.
// Возврат false означает отказ, действие не выполняется
type Confirmer interface {
	Confirm(title string) bool
}

// ConfirmerFunc адаптирует функцию под интерфейс Confirmer
type ConfirmerFunc func(string) bool

func (f ConfirmerFunc) Confirm(title string) bool { return f(title) }

// QueueNotifier накапливает уведомления для последующего вывода,
// используется CLI
type QueueNotifier struct {
	mu     sync.Mutex
	alerts []Alert
}

// Notify добавляет уведомление в очередь
func (q *QueueNotifier) Notify(alert Alert) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.alerts = append(q.alerts, alert)
}

// Drain возвращает накопленные уведомления и очищает очередь
func (q *QueueNotifier) Drain() []Alert {
	q.mu.Lock()
	defer q.mu.Unlock()
	alerts := q.alerts
	q.alerts = nil
	return alerts
}
