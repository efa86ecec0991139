package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound возвращается, когда файл отсутствует в хранилище
var ErrNotFound = errors.New("file not found in storage")

// FileStorage определяет порт хранилища бинарных файлов документов.
// Ключ непрозрачен для вызывающего кода и сохраняется в записи документа
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
