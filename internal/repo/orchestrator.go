package repo

import (
	"context"
	"log/slog"
	"time"

	"sportstroy-calc-backend/internal/store"
)

// Set — репозитории всех четырёх семейств продуктов. Инициализация
// выполняется последовательно, семейство за семейством: сбой одного
// не мешает остальным выйти в онлайн.
type Set struct {
	log *slog.Logger

	Coverage *Repository
	Hockey   *Repository
	USP      *Repository
	USPRound *Repository
}

func NewSet(local *store.Local, remote store.Store, timeout time.Duration, log *slog.Logger) *Set {
	return &Set{
		log:      log,
		Coverage: New(CoverageFamily(), local, remote, timeout, log),
		Hockey:   New(HockeyFamily(), local, remote, timeout, log),
		USP:      New(USPFamily(), local, remote, timeout, log),
		USPRound: New(USPRoundFamily(), local, remote, timeout, log),
	}
}

func (s *Set) All() []*Repository {
	return []*Repository{s.Coverage, s.Hockey, s.USP, s.USPRound}
}

// InitializeWithCloud инициализирует все семейства из удалённого хранилища.
// Ошибки логируются по семействам; возвращается первая, чтобы вызывающая
// сторона могла один раз сообщить о проблеме и продолжить в оффлайне.
func (s *Set) InitializeWithCloud(ctx context.Context) error {
	var first error
	for _, r := range s.All() {
		if err := r.InitializeWithCloud(ctx); err != nil {
			s.log.Warn("cloud init failed, family is offline", "family", r.family.Name, "err", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// InitializeLocal инициализирует все семейства только из локальных файлов.
func (s *Set) InitializeLocal() error {
	var first error
	for _, r := range s.All() {
		if err := r.InitializeLocal(); err != nil {
			s.log.Warn("local init failed, using defaults", "family", r.family.Name, "err", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Online — true, когда все семейства работают от общей базы.
func (s *Set) Online() bool {
	for _, r := range s.All() {
		if !r.Online() {
			return false
		}
	}
	return true
}

// ModeString — сводный режим по всем семействам.
func (s *Set) ModeString() string {
	online := 0
	for _, r := range s.All() {
		if r.Online() {
			online++
		}
	}
	switch online {
	case len(s.All()):
		return "онлайн (общая база)"
	case 0:
		return "оффлайн (локальные данные)"
	default:
		return "частично онлайн"
	}
}

// ByName — репозиторий по имени семейства из URL.
func (s *Set) ByName(name string) *Repository {
	switch name {
	case "coverage":
		return s.Coverage
	case "hockey":
		return s.Hockey
	case "usp":
		return s.USP
	case "usp-round", "usp_round":
		return s.USPRound
	}
	return nil
}
