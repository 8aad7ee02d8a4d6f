package menu

import (
	"errors"
	"testing"

	"catalogbot/app/catalog"
)

func testSnapshot() *catalog.Snapshot {
	return catalog.NewSnapshot([]catalog.Brand{
		{Name: "Acme", Products: []catalog.Product{
			{Name: "Widget", Instruction: "<b>Use daily</b>"},
			{Name: "Gadget", Instruction: "Charge first."},
		}},
		{Name: "Zenith", Products: []catalog.Product{
			{Name: "Watch", Instruction: "Wind it."},
		}},
	})
}

func TestResolveHomeAndNews(t *testing.T) {
	cat := testSnapshot()

	s, err := Resolve("HOME", cat)
	if err != nil {
		t.Fatalf("Resolve(HOME): %v", err)
	}
	if _, ok := s.(Root); !ok {
		t.Fatalf("Resolve(HOME) = %T, want Root", s)
	}

	s, err = Resolve("NEWS", cat)
	if err != nil {
		t.Fatalf("Resolve(NEWS): %v", err)
	}
	if _, ok := s.(NewsList); !ok {
		t.Fatalf("Resolve(NEWS) = %T, want NewsList", s)
	}
}

func TestResolveBrand(t *testing.T) {
	cat := testSnapshot()
	for _, b := range cat.Brands() {
		s, err := Resolve(BrandToken(b).String(), cat)
		if err != nil {
			t.Fatalf("Resolve(BRAND:%s): %v", b, err)
		}
		bl, ok := s.(BrandList)
		if !ok || bl.Brand != b {
			t.Fatalf("Resolve(BRAND:%s) = %#v", b, s)
		}
	}
}

func TestResolveUnknownBrandWarns(t *testing.T) {
	s, err := Resolve("BRAND:unknown", testSnapshot())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	root, ok := s.(Root)
	if !ok {
		t.Fatalf("screen = %T, want Root", s)
	}
	if root.Warning != WarnBrandNotFound {
		t.Fatalf("Warning = %q", root.Warning)
	}
}

func TestResolveProduct(t *testing.T) {
	s, err := Resolve("PRODUCT:Acme:Widget", testSnapshot())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	pd, ok := s.(ProductDetail)
	if !ok || pd.Brand != "Acme" || pd.Product != "Widget" {
		t.Fatalf("screen = %#v", s)
	}
}

func TestResolveMissingProduct(t *testing.T) {
	_, err := Resolve("PRODUCT:Acme:Missing", testSnapshot())
	var nf *catalog.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}

	_, err = Resolve("PRODUCT:Nope:Widget", testSnapshot())
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestResolveMalformed(t *testing.T) {
	_, err := Resolve("GARBAGE", testSnapshot())
	var mt *MalformedTokenError
	if !errors.As(err, &mt) {
		t.Fatalf("err = %v, want MalformedTokenError", err)
	}
}
