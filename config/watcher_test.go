package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vma.toml")
	if err := os.WriteFile(path, []byte("[[field]]\nname = \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := os.WriteFile(path, []byte("[[field]]\nname = \"b\"\nmax = \"77\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs():
		if len(cfg.Fields) != 1 || cfg.Fields[0].Name != "b" {
			t.Errorf("reloaded config = %+v", cfg.Fields)
		}
	case err := <-w.Errors():
		t.Fatalf("watcher error = %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vma.toml")
	if err := os.WriteFile(path, []byte("[[field]]\nname = \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := os.WriteFile(path, []byte("[[field\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-w.Errors():
		if err == nil {
			t.Error("watcher delivered nil error")
		}
	case cfg := <-w.Configs():
		t.Fatalf("broken file produced config %+v", cfg.Fields)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vma.toml")
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := w.Close(); err != ErrWatcherClosed {
		t.Errorf("second Close() error = %v, want ErrWatcherClosed", err)
	}
}
