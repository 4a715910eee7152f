package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestBundledMaps(t *testing.T) {
	m := NewManager()

	names := m.MapNames()
	want := []string{"canyon", "valley"}
	if len(names) != len(want) {
		t.Fatalf("MapNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("MapNames()[%d] = %s, want %s", i, names[i], want[i])
		}
	}

	for _, name := range want {
		for _, kind := range []string{"_height.png", "_color.png"} {
			data, err := m.Load(name + kind)
			if err != nil {
				t.Errorf("Load(%s%s) failed: %v", name, kind, err)
				continue
			}
			if len(data) < 8 || string(data[1:4]) != "PNG" {
				t.Errorf("%s%s is not a PNG", name, kind)
			}
		}
	}
}

func TestLoadNotFound(t *testing.T) {
	m := NewManager()
	_, err := m.Load("missing_height.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSourcePriority(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{
		"valley_height.png": {Data: []byte("override")},
	})

	data, err := m.Load("valley_height.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "override" {
		t.Errorf("expected last added source to win, got %q", data[:8])
	}

	// Files only in the bundled set still resolve
	if _, err := m.Load("valley_color.png"); err != nil {
		t.Errorf("expected fallback to bundled source: %v", err)
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "island_height.bmp"), []byte("bmp"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir failed: %v", err)
	}

	name, data, err := m.LoadAny("island_height", ".png", ".bmp", ".tga")
	if err != nil {
		t.Fatalf("LoadAny failed: %v", err)
	}
	if name != "island_height.bmp" || string(data) != "bmp" {
		t.Errorf("LoadAny = %s %q, want island_height.bmp \"bmp\"", name, data)
	}

	found := false
	for _, n := range m.MapNames() {
		if n == "island" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected island in MapNames(), got %v", m.MapNames())
	}
}

func TestAddDirMissing(t *testing.T) {
	m := NewManager()
	if err := m.AddDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestCacheStats(t *testing.T) {
	m := NewManager()
	for i := 0; i < 3; i++ {
		if _, err := m.Load("canyon_height.png"); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}
	hits, misses := m.cache.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("cache stats = %d hits, %d misses, want 2, 1", hits, misses)
	}

	m.Close()
	if _, err := m.Load("canyon_height.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Close, got %v", err)
	}
}
