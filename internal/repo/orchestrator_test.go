package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sportstroy-calc-backend/internal/store"
)

func newTestSet(t *testing.T, remote store.Store) *Set {
	t.Helper()
	local := store.NewLocal(filepath.Join(t.TempDir(), "data"))
	return NewSet(local, remote, time.Second, testLogger())
}

func TestSet_ByName(t *testing.T) {
	s := newTestSet(t, nil)

	cases := map[string]*Repository{
		"coverage":  s.Coverage,
		"hockey":    s.Hockey,
		"usp":       s.USP,
		"usp-round": s.USPRound,
		"usp_round": s.USPRound,
	}
	for name, want := range cases {
		if got := s.ByName(name); got != want {
			t.Errorf("ByName(%q) = %p, want %p", name, got, want)
		}
	}
	if got := s.ByName("mortgage"); got != nil {
		t.Errorf("ByName(unknown) = %p, want nil", got)
	}
}

func TestSet_InitializeWithCloud(t *testing.T) {
	fs := newFakeStore()
	s := newTestSet(t, fs)

	if err := s.InitializeWithCloud(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !s.Online() {
		t.Fatal("want all families online")
	}
	if got := s.ModeString(); got != "онлайн (общая база)" {
		t.Fatalf("ModeString = %q", got)
	}
}

func TestSet_PartiallyOnline(t *testing.T) {
	fs := newFakeStore()
	s := newTestSet(t, fs)
	if err := s.InitializeWithCloud(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	// одно семейство уходит в оффлайн после неудачного пуша
	fs.failPut = true
	_ = s.Hockey.Save(context.Background(), s.Hockey.AllPrices(), s.Hockey.Coefficients(), nil)

	if s.Online() {
		t.Fatal("want partially offline set")
	}
	if got := s.ModeString(); got != "частично онлайн" {
		t.Fatalf("ModeString = %q", got)
	}
}

func TestSet_OfflineWithoutRemote(t *testing.T) {
	s := newTestSet(t, nil)

	if err := s.InitializeWithCloud(context.Background()); err == nil {
		t.Fatal("want error without remote store")
	}
	if got := s.ModeString(); got != "оффлайн (локальные данные)" {
		t.Fatalf("ModeString = %q", got)
	}
	// все семейства при этом рабочие
	for _, r := range s.All() {
		if len(r.AllPrices()) == 0 {
			t.Errorf("family %s has empty prices", r.Family().Name)
		}
	}
}
