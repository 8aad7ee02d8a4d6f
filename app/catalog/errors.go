package catalog

import "fmt"

// NotFoundError reports a lookup of a brand or product that is not in the
// snapshot. Product is empty when the brand itself was missing.
type NotFoundError struct {
	Brand   string
	Product string
}

func (e *NotFoundError) Error() string {
	if e.Product == "" {
		return fmt.Sprintf("catalog: brand %q not found", e.Brand)
	}
	return fmt.Sprintf("catalog: product %q of brand %q not found", e.Product, e.Brand)
}

// Code classifies the error for handler summary logs.
func (e *NotFoundError) Code() string { return "NOT_FOUND" }

// LoadError reports that a catalog source could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Code classifies the error for handler summary logs.
func (e *LoadError) Code() string { return "LOAD_ERROR" }
