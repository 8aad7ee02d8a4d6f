// Package menu is the navigation core: it turns an opaque action token and a
// catalog snapshot into the next screen, and renders screens into display
// text plus a button grid. It is pure and transport-free; the bot package
// adapts it to Telegram.
package menu

import (
	"fmt"
	"strings"
)

// TokenKind enumerates the action token variants.
type TokenKind int

const (
	TokenHome TokenKind = iota
	TokenNews
	TokenBrand
	TokenProduct
)

// Token is the parsed form of an action token. Raw strings never travel past
// ParseToken; everything downstream works with the tagged variant.
type Token struct {
	Kind    TokenKind
	Brand   string
	Product string
}

const (
	wordHome    = "HOME"
	wordNews    = "NEWS"
	wordBrand   = "BRAND"
	wordProduct = "PRODUCT"

	sep    = ':'
	escape = '\\'
)

// MalformedTokenError reports a token that matches no known shape.
type MalformedTokenError struct {
	Raw string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("menu: malformed token %q", e.Raw)
}

// Code classifies the error for handler summary logs.
func (e *MalformedTokenError) Code() string { return "MALFORMED_TOKEN" }

// HomeToken returns the token requesting the root menu.
func HomeToken() Token { return Token{Kind: TokenHome} }

// NewsToken returns the token requesting the news screen.
func NewsToken() Token { return Token{Kind: TokenNews} }

// BrandToken returns the token requesting a brand's product list.
func BrandToken(brand string) Token { return Token{Kind: TokenBrand, Brand: brand} }

// ProductToken returns the token requesting a product's instruction.
func ProductToken(brand, product string) Token {
	return Token{Kind: TokenProduct, Brand: brand, Product: product}
}

// String encodes the token. Separator and escape characters inside ids are
// escaped, so any id round-trips through ParseToken.
func (t Token) String() string {
	switch t.Kind {
	case TokenHome:
		return wordHome
	case TokenNews:
		return wordNews
	case TokenBrand:
		return wordBrand + string(sep) + escapeField(t.Brand)
	case TokenProduct:
		return wordProduct + string(sep) + escapeField(t.Brand) + string(sep) + escapeField(t.Product)
	default:
		return ""
	}
}

// ParseToken decodes a raw action token into its tagged form.
func ParseToken(raw string) (Token, error) {
	switch raw {
	case wordHome:
		return HomeToken(), nil
	case wordNews:
		return NewsToken(), nil
	}

	head, rest, found := strings.Cut(raw, string(sep))
	if !found {
		return Token{}, &MalformedTokenError{Raw: raw}
	}
	fields, err := splitFields(rest)
	if err != nil {
		return Token{}, &MalformedTokenError{Raw: raw}
	}

	switch head {
	case wordBrand:
		if len(fields) != 1 {
			return Token{}, &MalformedTokenError{Raw: raw}
		}
		return BrandToken(fields[0]), nil
	case wordProduct:
		if len(fields) != 2 {
			return Token{}, &MalformedTokenError{Raw: raw}
		}
		return ProductToken(fields[0], fields[1]), nil
	default:
		return Token{}, &MalformedTokenError{Raw: raw}
	}
}

func escapeField(s string) string {
	if !strings.ContainsAny(s, string(sep)+string(escape)) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if r == sep || r == escape {
			b.WriteByte(escape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitFields splits on unescaped separators and unescapes each field.
// A trailing escape or an escape before any other character is malformed.
func splitFields(s string) ([]string, error) {
	fields := make([]string, 0, 2)
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if r != sep && r != escape {
				return nil, fmt.Errorf("invalid escape %q", r)
			}
			b.WriteRune(r)
			escaped = false
		case r == escape:
			escaped = true
		case r == sep:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		return nil, fmt.Errorf("trailing escape")
	}
	fields = append(fields, b.String())
	return fields, nil
}
