package bot

import (
	"testing"

	"catalogbot/app/catalog"
	"catalogbot/app/menu"
)

func TestInlineBtnRoundTrip(t *testing.T) {
	cases := []menu.Token{
		menu.HomeToken(),
		menu.NewsToken(),
		menu.BrandToken("Acme"),
		menu.BrandToken("Bits:Bytes"),
		menu.ProductToken("Acme", "Widget"),
		menu.ProductToken("A:B", `C\D`),
	}
	for _, want := range cases {
		btn := inlineBtn(menu.Button{Label: "x", Token: want.String()})
		raw := rebuildToken(btn.Unique, btn.Data)
		got, err := menu.ParseToken(raw)
		if err != nil {
			t.Fatalf("ParseToken(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("round trip via %q: got %+v, want %+v", raw, got, want)
		}
	}
}

func TestInlineBtnUniqueKeys(t *testing.T) {
	btn := inlineBtn(menu.Button{Label: "Acme", Token: menu.BrandToken("Acme").String()})
	if btn.Unique != "brand" || btn.Data != "Acme" {
		t.Fatalf("btn = %+v", btn)
	}
	btn = inlineBtn(menu.Button{Label: "News", Token: menu.NewsToken().String()})
	if btn.Unique != "news" || btn.Data != "" {
		t.Fatalf("btn = %+v", btn)
	}
}

func TestMarkupFrom(t *testing.T) {
	if markupFrom(nil) != nil {
		t.Fatal("markupFrom(nil) should be nil")
	}
	rows := [][]menu.Button{
		{{Label: "a", Token: "BRAND:a"}, {Label: "b", Token: "BRAND:b"}},
		{{Label: "news", Token: "NEWS"}},
	}
	m := markupFrom(rows)
	if len(m.InlineKeyboard) != 2 || len(m.InlineKeyboard[0]) != 2 {
		t.Fatalf("markup = %+v", m.InlineKeyboard)
	}
	if m.InlineKeyboard[0][0].Text != "a" {
		t.Fatalf("markup = %+v", m.InlineKeyboard)
	}
}

func TestFindTargets(t *testing.T) {
	snap := catalog.NewSnapshot([]catalog.Brand{
		{Name: "Acme", Products: []catalog.Product{{Name: "Widget", Instruction: "x"}}},
		{Name: "Zenith"},
	})
	targets := findTargets(snap)
	if len(targets) != 3 {
		t.Fatalf("targets = %+v", targets)
	}
	if targets[1].label != "Acme → Widget" || targets[1].token != "PRODUCT:Acme:Widget" {
		t.Fatalf("targets[1] = %+v", targets[1])
	}
}
