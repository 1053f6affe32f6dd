package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Local — локальные JSON-файлы, по одному на тип данных.
// Формат файла повторяет сериализацию соответствующей структуры.
type Local struct {
	dir string
}

func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

func (l *Local) EnsureDir() error {
	return os.MkdirAll(l.dir, 0o755)
}

func (l *Local) path(dataType string) string {
	return filepath.Join(l.dir, dataType+".json")
}

// Load читает файл типа данных в v. Возвращает ErrNotFound, если файла ещё нет.
func (l *Local) Load(dataType string, v interface{}) error {
	b, err := os.ReadFile(l.path(dataType))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", l.path(dataType), err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", l.path(dataType), err)
	}
	return nil
}

// Save пишет v в файл типа данных с отступами.
func (l *Local) Save(dataType string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(l.path(dataType), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", l.path(dataType), err)
	}
	return nil
}
