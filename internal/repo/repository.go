package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sportstroy-calc-backend/internal/domain"
	"sportstroy-calc-backend/internal/store"
)

// Repository — репозиторий цен одного семейства продуктов. Владеет прайсом,
// коэффициентами и (для круглой трубы) фиксированными значениями. Работает
// в двух режимах: онлайн (общая база в удалённом хранилище, локальные файлы
// как бэкап) и оффлайн (только локальные файлы).
type Repository struct {
	mu     sync.RWMutex
	log    *slog.Logger
	family Family

	local   *store.Local
	remote  store.Store // nil — удалённое хранилище не настроено
	timeout time.Duration

	prices *domain.PriceTable
	coeffs domain.Coefficients
	fixed  map[string]domain.FixedValue

	online bool
	// последняя прочитанная версия по типу данных; следующая запись
	// уходит с версией +1 (оптимистично, без контроля конфликтов)
	versions map[string]int
}

func New(family Family, local *store.Local, remote store.Store, timeout time.Duration, log *slog.Logger) *Repository {
	r := &Repository{
		log:      log,
		family:   family,
		local:    local,
		remote:   remote,
		timeout:  timeout,
		versions: make(map[string]int),
	}
	r.resetDefaultsLocked()
	return r
}

func (r *Repository) resetDefaultsLocked() {
	r.prices = r.family.DefaultPrices()
	r.coeffs = r.family.DefaultCoeffs
	if r.family.DefaultFixed != nil {
		r.fixed = r.family.DefaultFixed()
	}
}

// InitializeLocal загружает состояние из локальных файлов; если файлов ещё
// нет — записывает дефолты. При невосстановимой ошибке ввода-вывода дефолты
// остаются в памяти без сохранения, ошибка возвращается вызывающему.
func (r *Repository) InitializeLocal() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initializeLocalLocked()
}

func (r *Repository) initializeLocalLocked() error {
	if err := r.local.EnsureDir(); err != nil {
		r.resetDefaultsLocked()
		return fmt.Errorf("ensure data dir: %w", err)
	}

	var firstErr error

	var items []domain.PriceItem
	switch err := r.local.Load(r.family.PricesKey, &items); {
	case err == nil:
		r.prices.ReplaceAll(items)
	case errors.Is(err, store.ErrNotFound):
		r.prices = r.family.DefaultPrices()
		if werr := r.local.Save(r.family.PricesKey, r.prices.All()); werr != nil {
			r.log.Warn("write default prices", "family", r.family.Name, "err", werr)
		}
	default:
		r.prices = r.family.DefaultPrices()
		firstErr = err
	}

	if r.family.CoeffsKey != "" {
		var c domain.Coefficients
		switch err := r.local.Load(r.family.CoeffsKey, &c); {
		case err == nil:
			r.coeffs = c
		case errors.Is(err, store.ErrNotFound):
			r.coeffs = r.family.DefaultCoeffs
			if werr := r.local.Save(r.family.CoeffsKey, r.coeffs); werr != nil {
				r.log.Warn("write default coefficients", "family", r.family.Name, "err", werr)
			}
		default:
			r.coeffs = r.family.DefaultCoeffs
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if r.family.FixedKey != "" {
		var fv map[string]domain.FixedValue
		switch err := r.local.Load(r.family.FixedKey, &fv); {
		case err == nil:
			r.fixed = fv
		case errors.Is(err, store.ErrNotFound):
			r.fixed = r.family.DefaultFixed()
			if werr := r.local.Save(r.family.FixedKey, r.fixed); werr != nil {
				r.log.Warn("write default fixed values", "family", r.family.Name, "err", werr)
			}
		default:
			r.fixed = r.family.DefaultFixed()
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// InitializeWithCloud читает актуальные версии всех типов данных семейства
// из удалённого хранилища. Любой сбой переводит репозиторий в оффлайн,
// инициализирует его локально и возвращает исходную ошибку: вызывающая
// сторона один раз показывает её пользователю и продолжает работу.
func (r *Repository) InitializeWithCloud(ctx context.Context) error {
	if r.remote == nil {
		r.setOnline(false)
		_ = r.InitializeLocal()
		return fmt.Errorf("%s: remote store is not configured", r.family.Name)
	}

	if err := r.loadRemote(ctx); err != nil {
		r.setOnline(false)
		if lerr := r.InitializeLocal(); lerr != nil {
			r.log.Warn("local fallback init", "family", r.family.Name, "err", lerr)
		}
		return fmt.Errorf("%s: cloud init: %w", r.family.Name, err)
	}

	r.setOnline(true)
	return nil
}

func (r *Repository) loadRemote(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.latest(ctx, r.family.PricesKey)
	switch {
	case err == nil:
		var items []domain.PriceItem
		if err := json.Unmarshal(rec.Payload, &items); err != nil {
			return fmt.Errorf("decode %s: %w", r.family.PricesKey, err)
		}
		r.prices.ReplaceAll(items)
		r.versions[r.family.PricesKey] = rec.Version
	case errors.Is(err, store.ErrNotFound):
		// в общей базе ещё пусто — работаем от дефолтов, версия 0
		r.prices = r.family.DefaultPrices()
		r.versions[r.family.PricesKey] = 0
	default:
		return err
	}

	if r.family.CoeffsKey != "" {
		rec, err := r.latest(ctx, r.family.CoeffsKey)
		switch {
		case err == nil:
			var c domain.Coefficients
			if err := json.Unmarshal(rec.Payload, &c); err != nil {
				return fmt.Errorf("decode %s: %w", r.family.CoeffsKey, err)
			}
			r.coeffs = c
			r.versions[r.family.CoeffsKey] = rec.Version
		case errors.Is(err, store.ErrNotFound):
			r.coeffs = r.family.DefaultCoeffs
			r.versions[r.family.CoeffsKey] = 0
		default:
			return err
		}
	}

	if r.family.FixedKey != "" {
		rec, err := r.latest(ctx, r.family.FixedKey)
		switch {
		case err == nil:
			var fv map[string]domain.FixedValue
			if err := json.Unmarshal(rec.Payload, &fv); err != nil {
				return fmt.Errorf("decode %s: %w", r.family.FixedKey, err)
			}
			r.fixed = fv
			r.versions[r.family.FixedKey] = rec.Version
		case errors.Is(err, store.ErrNotFound):
			r.fixed = r.family.DefaultFixed()
			r.versions[r.family.FixedKey] = 0
		default:
			return err
		}
	}

	return nil
}

func (r *Repository) latest(ctx context.Context, dataType string) (store.Record, error) {
	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.remote.Latest(cctx, dataType)
}

// Save применяет новое состояние (админская правка). В онлайне каждая часть
// уходит в удалённое хранилище новой версией; локальная копия пишется только
// если прошли все пуши. Любой сбой пуша тихо переводит сохранение в
// локальный режим — «сохранено локально» считается успехом, репозиторий
// при этом уходит в оффлайн до следующей инициализации.
func (r *Repository) Save(ctx context.Context, items []domain.PriceItem, coeffs domain.Coefficients, fixed map[string]domain.FixedValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prices.ReplaceAll(items)
	if r.family.CoeffsKey != "" {
		r.coeffs = coeffs
	}
	if r.family.FixedKey != "" && fixed != nil {
		r.fixed = fixed
	}

	if r.online && r.remote != nil {
		if err := r.pushAllLocked(ctx); err != nil {
			r.log.Warn("remote push failed, saving locally", "family", r.family.Name, "err", err)
			r.online = false
		}
	}

	r.persistLocalLocked()
	return nil
}

func (r *Repository) pushAllLocked(ctx context.Context) error {
	type part struct {
		key     string
		payload interface{}
	}
	parts := []part{{r.family.PricesKey, r.prices.All()}}
	if r.family.CoeffsKey != "" {
		parts = append(parts, part{r.family.CoeffsKey, r.coeffs})
	}
	if r.family.FixedKey != "" {
		parts = append(parts, part{r.family.FixedKey, r.fixed})
	}

	for _, p := range parts {
		b, err := json.Marshal(p.payload)
		if err != nil {
			return err
		}
		next := r.versions[p.key] + 1
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		err = r.remote.Put(cctx, p.key, next, b)
		cancel()
		if err != nil {
			return err
		}
		r.versions[p.key] = next
	}
	return nil
}

// persistLocalLocked пишет текущее состояние в локальные файлы. Ошибки
// записи логируются и не считаются провалом сохранения.
func (r *Repository) persistLocalLocked() {
	if err := r.local.EnsureDir(); err != nil {
		r.log.Warn("ensure data dir", "family", r.family.Name, "err", err)
		return
	}
	if err := r.local.Save(r.family.PricesKey, r.prices.All()); err != nil {
		r.log.Warn("persist prices", "family", r.family.Name, "err", err)
	}
	if r.family.CoeffsKey != "" {
		if err := r.local.Save(r.family.CoeffsKey, r.coeffs); err != nil {
			r.log.Warn("persist coefficients", "family", r.family.Name, "err", err)
		}
	}
	if r.family.FixedKey != "" {
		if err := r.local.Save(r.family.FixedKey, r.fixed); err != nil {
			r.log.Warn("persist fixed values", "family", r.family.Name, "err", err)
		}
	}
}

// ResetToDefaults возвращает состояние к дефолтам из кода и сохраняет его
// локально. В удалённое хранилище сброс не пушится.
func (r *Repository) ResetToDefaults() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetDefaultsLocked()
	r.persistLocalLocked()
}

func (r *Repository) setOnline(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.online = v
}

// --- чтение; значения есть всегда, даже до инициализации ---

func (r *Repository) Price(category, subcategory string, def float64) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prices.Get(category, subcategory, def)
}

func (r *Repository) AllPrices() []domain.PriceItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prices.All()
}

func (r *Repository) Coefficients() domain.Coefficients {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.coeffs
}

func (r *Repository) FixedValues() map[string]domain.FixedValue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]domain.FixedValue, len(r.fixed))
	for k, v := range r.fixed {
		out[k] = v
	}
	return out
}

func (r *Repository) Family() Family {
	return r.family
}

// Version — последняя прочитанная версия типа данных в удалённом хранилище.
func (r *Repository) Version(dataType string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.versions[dataType]
}

func (r *Repository) Online() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.online
}

func (r *Repository) ModeString() string {
	if r.Online() {
		return "онлайн (общая база)"
	}
	return "оффлайн (локальные данные)"
}
