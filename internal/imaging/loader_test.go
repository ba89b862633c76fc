package imaging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.jpg")
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "c.JPEG")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "render.tiff")

	images, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	want := []string{"a.png", "b.jpg", "c.JPEG"}
	if len(images) != len(want) {
		t.Fatalf("Expected %d images, got %d", len(want), len(images))
	}
	for i, name := range want {
		if images[i].Name != name {
			t.Errorf("Expected image %d to be %s, got %s", i, name, images[i].Name)
		}
	}
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestLoadDirNotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")

	_, err := LoadDir(filepath.Join(dir, "a.png"))
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Expected not a directory error, got %v", err)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md")

	_, err := LoadDir(dir)
	if err == nil || !strings.Contains(err.Error(), "no valid images") {
		t.Errorf("Expected no valid images error, got %v", err)
	}
}
