package news

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreLoad(t *testing.T) {
	store := NewFileStore(filepath.Join("testdata", "news.json"))
	items := store.Load(context.Background())

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (untitled entry dropped)", len(items))
	}
	if items[0].Title != "Spring catalog refresh" {
		t.Fatalf("items[0].Title = %q", items[0].Title)
	}
	if items[0].URL != "https://example.com/news/spring" {
		t.Fatalf("items[0].URL = %q", items[0].URL)
	}
	if items[1].Title != "Service window on Friday" || items[1].Date != "" {
		t.Fatalf("items[1] = %+v", items[1])
	}
}

func TestFileStoreLoadAbsentFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	if items := store.Load(context.Background()); len(items) != 0 {
		t.Fatalf("items = %v, want empty", items)
	}
}

func TestFileStoreLoadWrongShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "news.json")
	if err := os.WriteFile(path, []byte(`{"news": "not a list"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)
	if items := store.Load(context.Background()); len(items) != 0 {
		t.Fatalf("items = %v, want empty", items)
	}
}

func TestFileStoreLoadEmptyPath(t *testing.T) {
	store := NewFileStore("")
	if items := store.Load(context.Background()); items != nil {
		t.Fatalf("items = %v, want nil", items)
	}
}
