package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileTokenSource читает bearer-токен из файла. Файл пишется командой
// login и переживает перезапуски CLI
type FileTokenSource struct {
	Path string
}

// Token возвращает сохранённый токен. Отсутствующий файл не ошибка:
// запрос уйдёт без токена и сервер ответит 401
func (s FileTokenSource) Token() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save записывает токен на диск с правами только для владельца
func (s FileTokenSource) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Clear удаляет сохранённый токен
func (s FileTokenSource) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
