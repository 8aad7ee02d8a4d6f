package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStoreLoadPreservesOrder(t *testing.T) {
	store := NewFileStore(filepath.Join("testdata", "products.json"))
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantBrands := []string{"Zenith", "Acme", "Mango"}
	if got := snap.Brands(); !reflect.DeepEqual(got, wantBrands) {
		t.Fatalf("Brands() = %v, want %v", got, wantBrands)
	}

	products, err := snap.Products("Zenith")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	wantProducts := []string{"Watch", "Alarm"}
	if !reflect.DeepEqual(products, wantProducts) {
		t.Fatalf("Products(Zenith) = %v, want %v", products, wantProducts)
	}
}

func TestSnapshotInstruction(t *testing.T) {
	store := NewFileStore(filepath.Join("testdata", "products.json"))
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := snap.Instruction("Acme", "Widget")
	if err != nil {
		t.Fatalf("Instruction: %v", err)
	}
	want := "Press the red button twice.\nDo not hold it."
	if got != want {
		t.Fatalf("Instruction = %q, want %q", got, want)
	}

	empty, err := snap.Products("Mango")
	if err != nil {
		t.Fatalf("Products(Mango): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("Products(Mango) = %v, want empty", empty)
	}
}

func TestSnapshotNotFound(t *testing.T) {
	snap := NewSnapshot([]Brand{{Name: "Acme", Products: []Product{{Name: "Widget", Instruction: "x"}}}})

	_, err := snap.Products("Nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Products(Nope) err = %v, want NotFoundError", err)
	}
	if nf.Code() != "NOT_FOUND" {
		t.Fatalf("Code() = %q", nf.Code())
	}

	_, err = snap.Instruction("Acme", "Gadget")
	if !errors.As(err, &nf) {
		t.Fatalf("Instruction err = %v, want NotFoundError", err)
	}
	if nf.Brand != "Acme" || nf.Product != "Gadget" {
		t.Fatalf("NotFoundError = %+v", nf)
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	_, err := store.Load(context.Background())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LoadError", err)
	}
	if le.Code() != "LOAD_ERROR" {
		t.Fatalf("Code() = %q", le.Code())
	}
}

func TestFileStoreLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`["not", "an", "object"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(path).Load(context.Background())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LoadError", err)
	}
}

func TestParseRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing brands key", `{"other": {}}`},
		{"brands not object", `{"brands": []}`},
		{"product not object", `{"brands": {"A": {"W": "text"}}}`},
		{"instruction not string", `{"brands": {"A": {"W": {"instruction": 5}}}}`},
		{"missing instruction", `{"brands": {"A": {"W": {}}}}`},
		{"truncated", `{"brands": {"A": {`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tc.data)
			}
		})
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	data := `{
		"version": 2,
		"brands": {
			"Acme": {
				"Widget": {"note": {"nested": [1, 2]}, "instruction": "ok"}
			}
		},
		"extra": [true, null]
	}`
	snap, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := snap.Instruction("Acme", "Widget")
	if err != nil || got != "ok" {
		t.Fatalf("Instruction = %q, %v", got, err)
	}
}

func TestNewSnapshotDropsDuplicates(t *testing.T) {
	snap := NewSnapshot([]Brand{
		{Name: "Acme", Products: []Product{{Name: "Widget", Instruction: "first"}, {Name: "Widget", Instruction: "second"}}},
		{Name: "Acme", Products: []Product{{Name: "Other", Instruction: "x"}}},
	})
	brands, products := snap.Counts()
	if brands != 1 || products != 1 {
		t.Fatalf("Counts() = %d, %d, want 1, 1", brands, products)
	}
	got, _ := snap.Instruction("Acme", "Widget")
	if got != "first" {
		t.Fatalf("Instruction = %q, want first occurrence kept", got)
	}
}
