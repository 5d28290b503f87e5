package media

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveExactMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "photo_2024.jpg"))

	got, ok := Resolve(dir, "photo_2024.jpg")
	if !ok {
		t.Fatal("expected resolve")
	}
	if got != filepath.Join(dir, "photo_2024.jpg") {
		t.Errorf("path = %q", got)
	}
}

func TestResolveFuzzyMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sub", "IMG-1234-restored.jpg"))

	got, ok := Resolve(dir, "IMG-1234.jpg")
	if !ok {
		t.Fatal("expected fuzzy resolve")
	}
	if filepath.Base(got) != "IMG-1234-restored.jpg" {
		t.Errorf("path = %q", got)
	}
}

func TestResolveFuzzyPrefersNewest(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "IMG-1234-a.jpg")
	newer := filepath.Join(dir, "IMG-1234-b.jpg")
	writeFile(t, older)
	writeFile(t, newer)
	old := time.Now().Add(-24 * time.Hour)
	if err := os.Chtimes(older, old, old); err != nil {
		t.Fatal(err)
	}

	got, ok := Resolve(dir, "IMG-1234.jpg")
	if !ok {
		t.Fatal("expected resolve")
	}
	if got != newer {
		t.Errorf("path = %q, want newest match %q", got, newer)
	}
}

func TestResolveExtensionMustMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "IMG-1234.png"))

	if _, ok := Resolve(dir, "IMG-1234.jpg"); ok {
		t.Error("resolved across extensions, want miss")
	}
}

func TestResolveMissingDir(t *testing.T) {
	if _, ok := Resolve(filepath.Join(t.TempDir(), "nope"), "a.jpg"); ok {
		t.Error("expected miss for missing directory")
	}
}

func TestResolveEmptyArgs(t *testing.T) {
	if _, ok := Resolve("", "a.jpg"); ok {
		t.Error("expected miss for empty dir")
	}
	if _, ok := Resolve(t.TempDir(), ""); ok {
		t.Error("expected miss for empty token")
	}
}

func TestMoveUnused(t *testing.T) {
	dir := t.TempDir()
	kept := filepath.Join(dir, "kept.jpg")
	unused := filepath.Join(dir, "unused.jpg")
	writeFile(t, kept)
	writeFile(t, unused)

	moved, err := MoveUnused(dir, map[string]bool{kept: true})
	if err != nil {
		t.Fatalf("MoveUnused: %v", err)
	}
	if moved != 1 {
		t.Errorf("moved = %d, want 1", moved)
	}
	if _, err := os.Stat(kept); err != nil {
		t.Errorf("kept file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, UnusedDirName, "unused.jpg")); err != nil {
		t.Errorf("unused file not moved: %v", err)
	}
}

func TestMoveUnusedIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"))

	if _, err := MoveUnused(dir, nil); err != nil {
		t.Fatal(err)
	}
	// second run must not touch the already-parked file again
	moved, err := MoveUnused(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if moved != 0 {
		t.Errorf("moved = %d, want 0", moved)
	}
}
