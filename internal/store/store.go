package store

import (
	"context"
	"errors"
)

// ErrNotFound — записи данного типа ещё нет ни в удалённом хранилище,
// ни в локальном файле.
var ErrNotFound = errors.New("store: record not found")

// Record — последняя по версии запись одного типа данных.
type Record struct {
	Version int
	Payload []byte
}

// Store — версионированное хранилище записей, адресуемых строковым типом
// данных ("prices", "hockey_coefficients" и т.п.). Актуальной считается
// запись с максимальной версией.
type Store interface {
	Latest(ctx context.Context, dataType string) (Record, error)
	// Put записывает новую версию: сперва update существующей записи,
	// при неудаче — insert. Номер версии выбирает вызывающая сторона
	// (последняя прочитанная + 1).
	Put(ctx context.Context, dataType string, version int, payload []byte) error
}
