package settings

import (
	"os"
	"path/filepath"
	"testing"

	"attachsweep/internal/domain"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return NewStore("/vault")
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	store := newStore(t)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != domain.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", got)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := newStore(t)

	want := domain.Settings{
		EnableCascade:    true,
		StopFolders:      "assets, archive",
		EnableWarning:    false,
		WarningThreshold: 5,
		TrashStrategy:    domain.TrashLocal,
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestLoadMergesPartialFile(t *testing.T) {
	store := newStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0755); err != nil {
		t.Fatal(err)
	}
	// Only one field persisted; the rest must come from the defaults.
	if err := os.WriteFile(store.path, []byte(`{"warningThreshold": 7}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.WarningThreshold != 7 {
		t.Errorf("WarningThreshold = %d, want 7", got.WarningThreshold)
	}
	if got.TrashStrategy != domain.TrashSystem || !got.EnableCascade {
		t.Errorf("unpersisted fields lost defaults: %+v", got)
	}
}

func TestLoadNormalizes(t *testing.T) {
	store := newStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0755); err != nil {
		t.Fatal(err)
	}
	raw := `{"warningThreshold": 0, "trashStrategy": "incinerate"}`
	if err := os.WriteFile(store.path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.WarningThreshold != 1 {
		t.Errorf("WarningThreshold = %d, want clamped 1", got.WarningThreshold)
	}
	if got.TrashStrategy != domain.TrashSystem {
		t.Errorf("TrashStrategy = %q, want fallback system-trash", got.TrashStrategy)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	store := newStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err == nil {
		t.Error("expected parse error for corrupt settings")
	}
	if got != domain.DefaultSettings() {
		t.Errorf("corrupt file must fall back to defaults, got %+v", got)
	}
}
