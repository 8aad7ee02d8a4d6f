package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Parse decodes the products document. Expected shape:
//
//	{"brands": {"<brand>": {"<product>": {"instruction": "<text>"}, ...}, ...}}
//
// The document is walked with a token decoder instead of map unmarshalling
// so the brand and product order of the file is preserved.
func Parse(data []byte) (*Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("top-level object: %w", err)
	}

	var brands []Brand
	seen := false
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if key != "brands" {
			if err := skipValue(dec); err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			continue
		}
		seen = true
		brands, err = parseBrands(dec)
		if err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if !seen {
		return nil, fmt.Errorf(`missing "brands" key`)
	}
	return NewSnapshot(brands), nil
}

func parseBrands(dec *json.Decoder) ([]Brand, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("brands: %w", err)
	}
	var brands []Brand
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		products, err := parseProducts(dec, name)
		if err != nil {
			return nil, err
		}
		brands = append(brands, Brand{Name: name, Products: products})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return brands, nil
}

func parseProducts(dec *json.Decoder, brand string) ([]Product, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("brand %q: %w", brand, err)
	}
	var products []Product
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		instruction, err := parseInstruction(dec, brand, name)
		if err != nil {
			return nil, err
		}
		products = append(products, Product{Name: name, Instruction: instruction})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return products, nil
}

func parseInstruction(dec *json.Decoder, brand, product string) (string, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return "", fmt.Errorf("product %q of brand %q: %w", product, brand, err)
	}
	var instruction string
	seen := false
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return "", err
		}
		if key != "instruction" {
			if err := skipValue(dec); err != nil {
				return "", err
			}
			continue
		}
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		s, ok := tok.(string)
		if !ok {
			return "", fmt.Errorf("product %q of brand %q: instruction is not a string", product, brand)
		}
		instruction = s
		seen = true
	}
	if err := expectDelim(dec, '}'); err != nil {
		return "", err
	}
	if !seen {
		return "", fmt.Errorf("product %q of brand %q: missing instruction", product, brand)
	}
	return instruction, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || rune(d) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string key, got %v", tok)
	}
	return s, nil
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}
