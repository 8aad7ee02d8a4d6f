package menu

import (
	"errors"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	cases := []Token{
		HomeToken(),
		NewsToken(),
		BrandToken("Acme"),
		BrandToken("Bits:Bytes"),
		BrandToken(`Back\slash`),
		ProductToken("Acme", "Widget"),
		ProductToken("A:B", `C\D:E`),
		ProductToken("", ""),
	}
	for _, want := range cases {
		raw := want.String()
		got, err := ParseToken(raw)
		if err != nil {
			t.Fatalf("ParseToken(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseToken(%q) = %+v, want %+v", raw, got, want)
		}
	}
}

func TestTokenEscaping(t *testing.T) {
	raw := BrandToken("a:b").String()
	if raw != `BRAND:a\:b` {
		t.Fatalf("BrandToken(a:b).String() = %q", raw)
	}
	raw = ProductToken(`a\b`, "c").String()
	if raw != `PRODUCT:a\\b:c` {
		t.Fatalf("String() = %q", raw)
	}
}

func TestParseTokenMalformed(t *testing.T) {
	cases := []string{
		"",
		"home",
		"HOMEX",
		"BRAND",
		"PRODUCT:only-brand",
		"PRODUCT:a:b:c",
		"BRAND:a:b",
		`BRAND:bad\escape\x`,
		`BRAND:trailing\`,
		"GADGET:x",
	}
	for _, raw := range cases {
		_, err := ParseToken(raw)
		var mt *MalformedTokenError
		if !errors.As(err, &mt) {
			t.Fatalf("ParseToken(%q) err = %v, want MalformedTokenError", raw, err)
		}
		if mt.Code() != "MALFORMED_TOKEN" {
			t.Fatalf("Code() = %q", mt.Code())
		}
	}
}
