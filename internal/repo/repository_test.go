package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"sportstroy-calc-backend/internal/domain"
	"sportstroy-calc-backend/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore — удалённое хранилище в памяти с управляемыми отказами.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]store.Record
	failAll bool // падают и чтения, и записи
	failPut bool // падают только записи
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]store.Record)}
}

func (f *fakeStore) Latest(_ context.Context, dataType string) (store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return store.Record{}, errors.New("remote is down")
	}
	rec, ok := f.records[dataType]
	if !ok {
		return store.Record{}, store.ErrNotFound
	}
	return rec, nil
}

func (f *fakeStore) Put(_ context.Context, dataType string, version int, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll || f.failPut {
		return errors.New("remote is down")
	}
	f.records[dataType] = store.Record{Version: version, Payload: payload}
	return nil
}

func newTestRepo(t *testing.T, remote store.Store) *Repository {
	t.Helper()
	local := store.NewLocal(filepath.Join(t.TempDir(), "data"))
	return New(HockeyFamily(), local, remote, time.Second, testLogger())
}

func TestInitializeWithCloud_EmptyRemote(t *testing.T) {
	fs := newFakeStore()
	r := newTestRepo(t, fs)

	if err := r.InitializeWithCloud(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !r.Online() {
		t.Fatal("want online mode")
	}
	// в общей базе пусто — работаем от дефолтов с версии 0
	if got := r.Version(r.Family().PricesKey); got != 0 {
		t.Fatalf("Version = %d, want 0", got)
	}
	if got := r.Price(domain.CategoryGlass, "5мм", 0); got != 15500 {
		t.Fatalf("Price = %v, want default 15500", got)
	}
}

func TestInitializeWithCloud_RemoteDown(t *testing.T) {
	fs := newFakeStore()
	fs.failAll = true
	r := newTestRepo(t, fs)

	err := r.InitializeWithCloud(context.Background())
	if err == nil {
		t.Fatal("want error from cloud init")
	}
	if r.Online() {
		t.Fatal("want offline mode after remote failure")
	}
	// несмотря на ошибку репозиторий рабочий: дефолты в памяти и на диске
	if len(r.AllPrices()) == 0 {
		t.Fatal("prices are empty after fallback")
	}
	if got := r.Price(domain.CategoryGates, "Калитка", 0); got != 35000 {
		t.Fatalf("Price = %v, want default 35000", got)
	}
}

func TestInitializeWithCloud_NoRemoteConfigured(t *testing.T) {
	r := newTestRepo(t, nil)

	if err := r.InitializeWithCloud(context.Background()); err == nil {
		t.Fatal("want error when remote is not configured")
	}
	if r.Online() {
		t.Fatal("want offline mode")
	}
	if len(r.AllPrices()) == 0 {
		t.Fatal("prices are empty")
	}
}

func TestInitializeWithCloud_ReadsRemoteVersions(t *testing.T) {
	fs := newFakeStore()
	fs.records["hockey_prices"] = store.Record{
		Version: 7,
		Payload: []byte(`[{"category":"Стеклопластик","subcategory":"5мм","price":17000}]`),
	}
	r := newTestRepo(t, fs)

	if err := r.InitializeWithCloud(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := r.Version("hockey_prices"); got != 7 {
		t.Fatalf("Version = %d, want 7", got)
	}
	if got := r.Price(domain.CategoryGlass, "5мм", 0); got != 17000 {
		t.Fatalf("Price = %v, want remote 17000", got)
	}
}

func TestSave_OnlinePushesNextVersion(t *testing.T) {
	fs := newFakeStore()
	r := newTestRepo(t, fs)
	if err := r.InitializeWithCloud(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	items := []domain.PriceItem{{Category: domain.CategoryGlass, Subcategory: "5мм", Price: 16000}}
	if err := r.Save(context.Background(), items, r.Coefficients(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	if !r.Online() {
		t.Fatal("want repository to stay online")
	}
	if got := r.Version("hockey_prices"); got != 1 {
		t.Fatalf("Version = %d, want 1", got)
	}
	if rec := fs.records["hockey_prices"]; rec.Version != 1 {
		t.Fatalf("remote version = %d, want 1", rec.Version)
	}
}

func TestSave_PushFailureFallsBackToLocal(t *testing.T) {
	fs := newFakeStore()
	local := store.NewLocal(filepath.Join(t.TempDir(), "data"))
	r := New(HockeyFamily(), local, fs, time.Second, testLogger())
	if err := r.InitializeWithCloud(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	fs.failPut = true
	items := []domain.PriceItem{{Category: domain.CategoryGlass, Subcategory: "5мм", Price: 16000}}
	// сбой пуша — не ошибка для админа: данные сохранены локально
	if err := r.Save(context.Background(), items, r.Coefficients(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	if r.Online() {
		t.Fatal("want offline mode after failed push")
	}
	if got := r.Version("hockey_prices"); got != 0 {
		t.Fatalf("Version = %d, want unchanged 0", got)
	}
	// новое состояние на диске
	var saved []domain.PriceItem
	if err := local.Load("hockey_prices", &saved); err != nil {
		t.Fatalf("load local: %v", err)
	}
	found := false
	for _, it := range saved {
		if it.Subcategory == "5мм" && it.Price == 16000 {
			found = true
		}
	}
	if !found {
		t.Fatalf("local file has no updated price: %+v", saved)
	}
	// данные видны и читателям
	if got := r.Price(domain.CategoryGlass, "5мм", 0); got != 16000 {
		t.Fatalf("Price = %v, want 16000", got)
	}
}

func TestSave_FreshInitRestoresOnline(t *testing.T) {
	fs := newFakeStore()
	r := newTestRepo(t, fs)
	_ = r.InitializeWithCloud(context.Background())

	fs.failPut = true
	_ = r.Save(context.Background(), r.AllPrices(), r.Coefficients(), nil)
	if r.Online() {
		t.Fatal("want offline after failed push")
	}

	// оффлайн держится до следующей инициализации
	fs.failPut = false
	if err := r.InitializeWithCloud(context.Background()); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	if !r.Online() {
		t.Fatal("want online after successful re-init")
	}
}

func TestInitializeLocal_ReadsExistingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	local := store.NewLocal(dir)
	if err := local.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	seed := []domain.PriceItem{{Category: domain.CategoryGlass, Subcategory: "5мм", Price: 14000}}
	if err := local.Save("hockey_prices", seed); err != nil {
		t.Fatal(err)
	}

	r := New(HockeyFamily(), local, nil, time.Second, testLogger())
	if err := r.InitializeLocal(); err != nil {
		t.Fatalf("init local: %v", err)
	}
	if got := r.Price(domain.CategoryGlass, "5мм", 0); got != 14000 {
		t.Fatalf("Price = %v, want 14000 from file", got)
	}
}

func TestInitializeLocal_WritesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	local := store.NewLocal(dir)

	r := New(HockeyFamily(), local, nil, time.Second, testLogger())
	if err := r.InitializeLocal(); err != nil {
		t.Fatalf("init local: %v", err)
	}

	for _, name := range []string{"hockey_prices.json", "hockey_coefficients.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("default file %s not written: %v", name, err)
		}
	}
}

func TestResetToDefaults(t *testing.T) {
	fs := newFakeStore()
	r := newTestRepo(t, fs)
	_ = r.InitializeWithCloud(context.Background())

	items := []domain.PriceItem{{Category: domain.CategoryGlass, Subcategory: "5мм", Price: 99999}}
	_ = r.Save(context.Background(), items, r.Coefficients(), nil)

	r.ResetToDefaults()
	if got := r.Price(domain.CategoryGlass, "5мм", 0); got != 15500 {
		t.Fatalf("Price = %v, want default 15500", got)
	}
	// сброс не пушится в общую базу
	if rec := fs.records["hockey_prices"]; rec.Version != 1 {
		t.Fatalf("remote version = %d, want 1 (no push on reset)", rec.Version)
	}
}

func TestModeString(t *testing.T) {
	r := newTestRepo(t, nil)
	if got := r.ModeString(); got != "оффлайн (локальные данные)" {
		t.Fatalf("ModeString = %q", got)
	}

	fs := newFakeStore()
	r2 := newTestRepo(t, fs)
	_ = r2.InitializeWithCloud(context.Background())
	if got := r2.ModeString(); got != "онлайн (общая база)" {
		t.Fatalf("ModeString = %q", got)
	}
}
