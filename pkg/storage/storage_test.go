package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(p, []byte("<title>"+name+"</title>"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.html", "a.HTM", "notes.txt", "nested/c.html")
	single := filepath.Join(dir, "notes.txt")

	s := &Storage{}
	got, err := s.Discover(context.Background(), []string{single, dir, Stdin}, []string{".html", ".htm"})
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	want := []string{
		single,
		filepath.Join(dir, "a.HTM"),
		filepath.Join(dir, "b.html"),
		filepath.Join(dir, "nested", "c.html"),
		Stdin,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	s := &Storage{}
	_, err := s.Discover(context.Background(), []string{filepath.Join(t.TempDir(), "missing.html")}, []string{".html"})
	if err == nil {
		t.Fatal("Discover() expected error for missing path")
	}
}

func TestReadFile_Stdin(t *testing.T) {
	s := WithStdin(strings.NewReader("<title>stdin</title>"))
	data, err := s.ReadFile(Stdin)
	if err != nil {
		t.Fatalf("ReadFile(-) failed: %v", err)
	}
	if string(data) != "<title>stdin</title>" {
		t.Errorf("ReadFile(-) = %q", data)
	}
}

func TestSaveFile_CreatesDirectories(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "out", "records.json")

	if err := s.SaveFile(path, []byte("[]")); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}
	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() failed: %v", err)
	}
	if stats.SizeBytes != 2 {
		t.Errorf("SizeBytes = %d, want 2", stats.SizeBytes)
	}
}

func TestDiscover_StdinOnce(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.html")
	page := filepath.Join(dir, "a.html")

	s := WithStdin(strings.NewReader("<title>stdin</title>"))
	got, err := s.Discover(context.Background(), []string{Stdin, page, Stdin, Stdin}, []string{".html"})
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	want := []string{Stdin, page}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestGetFileStats_Missing(t *testing.T) {
	s := &Storage{}
	if _, err := s.GetFileStats(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("GetFileStats() expected error for missing file")
	}
}
