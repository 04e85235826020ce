package store

import (
	"os"
	"path/filepath"
	"testing"

	"ropeswing/internal/swing"
)

var (
	_ swing.ScoreStore = (*File)(nil)
	_ swing.ScoreStore = (*Memory)(nil)
)

func TestFileMissingReadsZero(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nested", "scores.json"))
	v, err := f.Load("rope-high-score")
	if err != nil {
		t.Fatalf("load from missing file: %v", err)
	}
	if v != 0 {
		t.Fatalf("value = %d, want 0", v)
	}
}

func TestFileRoundTripKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	f := NewFile(path)
	if err := f.Save("other", 5); err != nil {
		t.Fatalf("save other: %v", err)
	}
	if err := f.Save("rope-high-score", 42); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened := NewFile(path)
	v, err := reopened.Load("rope-high-score")
	if err != nil || v != 42 {
		t.Fatalf("value = %d err = %v, want 42", v, err)
	}
	if other, _ := reopened.Load("other"); other != 5 {
		t.Fatalf("other = %d, want 5", other)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temporary file should be renamed away")
	}
}

func TestFileCorruptLoadFailsButSaveRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := NewFile(path)
	if _, err := f.Load("rope-high-score"); err == nil {
		t.Fatal("expected a decode error for a corrupt file")
	}
	if err := f.Save("rope-high-score", 9); err != nil {
		t.Fatalf("save over corrupt file: %v", err)
	}
	if v, err := f.Load("rope-high-score"); err != nil || v != 9 {
		t.Fatalf("value = %d err = %v, want 9", v, err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	if v, _ := m.Load("k"); v != 0 {
		t.Fatalf("value = %d, want 0", v)
	}
	_ = m.Save("k", 3)
	if v, _ := m.Load("k"); v != 3 {
		t.Fatalf("value = %d, want 3", v)
	}
}
