package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type diskStorage struct {
	dir string
}

// NewDiskStorage создаёт хранилище файлов в локальном каталоге
func NewDiskStorage(dir string) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &diskStorage{dir: dir}, nil
}

func (s *diskStorage) path(key string) string {
	// Ключ генерируется сервисом и не содержит разделителей пути,
	// Base отсекает любой подозрительный ввод
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *diskStorage) Save(ctx context.Context, key string, r io.Reader) (int64, error) {
	f, err := os.Create(s.path(key))
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(s.path(key))
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close file: %w", err)
	}
	return n, nil
}

func (s *diskStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *diskStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
