package menu

import (
	"reflect"
	"strings"
	"testing"

	"catalogbot/app/catalog"
	"catalogbot/app/news"
)

func TestRenderRoot(t *testing.T) {
	r := NewRenderer(2, 5)
	cat := testSnapshot()
	v := r.Render(Root{}, cat, nil)

	if v.Mode != ModePlain {
		t.Fatalf("Mode = %v, want plain", v.Mode)
	}
	if !strings.HasPrefix(v.Text, "Hi! Pick a brand") {
		t.Fatalf("Text = %q", v.Text)
	}
	// Two brands in one row, then the news row.
	if len(v.Keyboard) != 2 {
		t.Fatalf("Keyboard = %v", v.Keyboard)
	}
	if v.Keyboard[0][0].Label != "Acme" || v.Keyboard[0][0].Token != "BRAND:Acme" {
		t.Fatalf("first button = %+v", v.Keyboard[0][0])
	}
	last := v.Keyboard[len(v.Keyboard)-1]
	if len(last) != 1 || last[0].Token != "NEWS" {
		t.Fatalf("trailing row = %+v", last)
	}
}

func TestRenderRootWarning(t *testing.T) {
	r := NewRenderer(2, 5)
	v := r.Render(Root{Warning: WarnBrandNotFound}, testSnapshot(), nil)
	if !strings.HasPrefix(v.Text, WarnBrandNotFound+"\n") {
		t.Fatalf("Text = %q", v.Text)
	}
}

func TestRenderBrandList(t *testing.T) {
	r := NewRenderer(2, 5)
	v := r.Render(BrandList{Brand: "Acme"}, testSnapshot(), nil)

	if v.Text != "Choose a product of brand «Acme»:" {
		t.Fatalf("Text = %q", v.Text)
	}
	if v.Keyboard[0][0].Token != "PRODUCT:Acme:Widget" || v.Keyboard[0][1].Token != "PRODUCT:Acme:Gadget" {
		t.Fatalf("product row = %+v", v.Keyboard[0])
	}
	last := v.Keyboard[len(v.Keyboard)-1]
	if len(last) != 1 || last[0].Token != "HOME" {
		t.Fatalf("trailing row = %+v", last)
	}
}

func TestRenderProductDetail(t *testing.T) {
	r := NewRenderer(2, 5)
	v := r.Render(ProductDetail{Brand: "Acme", Product: "Widget"}, testSnapshot(), nil)

	if v.Mode != ModeHTML {
		t.Fatalf("Mode = %v, want HTML", v.Mode)
	}
	if !strings.Contains(v.Text, "Acme → Widget") {
		t.Fatalf("Text = %q, missing header", v.Text)
	}
	if !strings.Contains(v.Text, "<b>Use daily</b>") {
		t.Fatalf("Text = %q, instruction not verbatim", v.Text)
	}
	if len(v.Keyboard) != 2 {
		t.Fatalf("Keyboard = %v", v.Keyboard)
	}
	if v.Keyboard[0][0].Token != "BRAND:Acme" || v.Keyboard[1][0].Token != "HOME" {
		t.Fatalf("Keyboard = %v", v.Keyboard)
	}
}

func TestRenderNewsEmpty(t *testing.T) {
	r := NewRenderer(2, 5)
	cat := testSnapshot()
	v := r.Render(NewsList{}, cat, nil)

	if v.Text != "No news yet." {
		t.Fatalf("Text = %q", v.Text)
	}
	root := r.Render(Root{}, cat, nil)
	if !reflect.DeepEqual(v.Keyboard, root.Keyboard) {
		t.Fatalf("news keyboard %v differs from root keyboard %v", v.Keyboard, root.Keyboard)
	}
}

func TestRenderNewsItems(t *testing.T) {
	r := NewRenderer(2, 5)
	items := []news.Item{
		{Title: "First & foremost", Date: "2025-04-02", Summary: "Short note.", URL: "https://example.com/a"},
		{Title: "Second"},
	}
	v := r.Render(NewsList{}, testSnapshot(), items)

	if !strings.Contains(v.Text, "<b>1. First &amp; foremost</b> — <i>2025-04-02</i>") {
		t.Fatalf("Text = %q", v.Text)
	}
	if !strings.Contains(v.Text, "Short note.") {
		t.Fatalf("Text = %q", v.Text)
	}
	if !strings.Contains(v.Text, `<a href="https://example.com/a">Read more</a>`) {
		t.Fatalf("Text = %q", v.Text)
	}
	if !strings.Contains(v.Text, "<b>2. Second</b>") {
		t.Fatalf("Text = %q", v.Text)
	}
}

func TestRenderNewsTruncation(t *testing.T) {
	r := NewRenderer(2, 5)
	items := make([]news.Item, 7)
	for i := range items {
		items[i] = news.Item{Title: "Item"}
	}
	v := r.Render(NewsList{}, testSnapshot(), items)
	if strings.Contains(v.Text, "<b>6.") {
		t.Fatalf("Text = %q, want at most 5 items", v.Text)
	}
	if !strings.Contains(v.Text, "<b>5.") {
		t.Fatalf("Text = %q, want 5 items", v.Text)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer(2, 5)
	cat := testSnapshot()
	items := []news.Item{{Title: "One", Date: "2025-01-01"}}

	for _, s := range []Screen{Root{}, BrandList{Brand: "Acme"}, ProductDetail{Brand: "Acme", Product: "Widget"}, NewsList{}} {
		a := r.Render(s, cat, items)
		b := r.Render(s, cat, items)
		if a.Text != b.Text || !reflect.DeepEqual(a.Keyboard, b.Keyboard) || a.Mode != b.Mode {
			t.Fatalf("render of %T not deterministic", s)
		}
	}
}

// End-to-end flow over a one-brand catalog.
func TestScenarioStartToProduct(t *testing.T) {
	cat := catalog.NewSnapshot([]catalog.Brand{
		{Name: "Acme", Products: []catalog.Product{{Name: "Widget", Instruction: "<b>Use daily</b>"}}},
	})
	r := NewRenderer(2, 5)

	root := r.Render(Root{}, cat, nil)
	if len(root.Keyboard) != 2 || root.Keyboard[0][0].Label != "Acme" || root.Keyboard[1][0].Token != "NEWS" {
		t.Fatalf("root keyboard = %v", root.Keyboard)
	}

	s, err := Resolve(root.Keyboard[0][0].Token, cat)
	if err != nil {
		t.Fatal(err)
	}
	brandView := r.Render(s, cat, nil)
	if brandView.Text != "Choose a product of brand «Acme»:" {
		t.Fatalf("Text = %q", brandView.Text)
	}
	if brandView.Keyboard[0][0].Label != "Widget" {
		t.Fatalf("keyboard = %v", brandView.Keyboard)
	}

	s, err = Resolve(brandView.Keyboard[0][0].Token, cat)
	if err != nil {
		t.Fatal(err)
	}
	detail := r.Render(s, cat, nil)
	if !strings.Contains(detail.Text, "Acme → Widget") || !strings.Contains(detail.Text, "<b>Use daily</b>") {
		t.Fatalf("Text = %q", detail.Text)
	}
	if len(detail.Keyboard) != 2 {
		t.Fatalf("keyboard = %v", detail.Keyboard)
	}
}
