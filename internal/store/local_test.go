package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLocal_RoundTrip(t *testing.T) {
	l := NewLocal(filepath.Join(t.TempDir(), "data"))
	if err := l.EnsureDir(); err != nil {
		t.Fatal(err)
	}

	type row struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	in := []row{{Name: "Калитка", Price: 35000}}
	if err := l.Save("hockey_prices", in); err != nil {
		t.Fatal(err)
	}

	var out []row
	if err := l.Load("hockey_prices", &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("Load = %+v, want %+v", out, in)
	}
}

func TestLocal_LoadMissingFile(t *testing.T) {
	l := NewLocal(t.TempDir())

	var v interface{}
	err := l.Load("no_such_type", &v)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
