// Package catalog provides the brand -> product -> instruction data set used
// by the menu screens. A Snapshot is an immutable view loaded per update;
// brand and product ordering is the insertion order of the source.
package catalog

import "context"

// Product is a single catalog entry with its usage instruction.
// The instruction may contain Telegram HTML markup and is passed through verbatim.
type Product struct {
	Name        string
	Instruction string
}

// Brand groups products under a brand name.
type Brand struct {
	Name     string
	Products []Product
}

// Store loads catalog snapshots from a backing source.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Snapshot is an immutable catalog view for the duration of one update.
type Snapshot struct {
	brands    []Brand
	byBrand   map[string]int
	byProduct []map[string]int
}

// NewSnapshot builds a snapshot preserving the given brand and product order.
// Duplicate names keep the first occurrence.
func NewSnapshot(brands []Brand) *Snapshot {
	s := &Snapshot{
		byBrand:   make(map[string]int, len(brands)),
		byProduct: make([]map[string]int, 0, len(brands)),
	}
	for _, b := range brands {
		if _, dup := s.byBrand[b.Name]; dup {
			continue
		}
		idx := make(map[string]int, len(b.Products))
		products := make([]Product, 0, len(b.Products))
		for _, p := range b.Products {
			if _, dup := idx[p.Name]; dup {
				continue
			}
			idx[p.Name] = len(products)
			products = append(products, p)
		}
		s.byBrand[b.Name] = len(s.brands)
		s.brands = append(s.brands, Brand{Name: b.Name, Products: products})
		s.byProduct = append(s.byProduct, idx)
	}
	return s
}

// Brands returns brand names in catalog order.
func (s *Snapshot) Brands() []string {
	names := make([]string, len(s.brands))
	for i, b := range s.brands {
		names[i] = b.Name
	}
	return names
}

// HasBrand reports whether the brand exists in the snapshot.
func (s *Snapshot) HasBrand(brand string) bool {
	_, ok := s.byBrand[brand]
	return ok
}

// Products returns product names of the brand in catalog order.
func (s *Snapshot) Products(brand string) ([]string, error) {
	i, ok := s.byBrand[brand]
	if !ok {
		return nil, &NotFoundError{Brand: brand}
	}
	names := make([]string, len(s.brands[i].Products))
	for j, p := range s.brands[i].Products {
		names[j] = p.Name
	}
	return names, nil
}

// Instruction returns the stored instruction text for the product.
func (s *Snapshot) Instruction(brand, product string) (string, error) {
	i, ok := s.byBrand[brand]
	if !ok {
		return "", &NotFoundError{Brand: brand}
	}
	j, ok := s.byProduct[i][product]
	if !ok {
		return "", &NotFoundError{Brand: brand, Product: product}
	}
	return s.brands[i].Products[j].Instruction, nil
}

// Counts returns the number of brands and the total number of products.
func (s *Snapshot) Counts() (brands, products int) {
	brands = len(s.brands)
	for _, b := range s.brands {
		products += len(b.Products)
	}
	return brands, products
}

// All returns the underlying brand slice in catalog order. The caller must
// not mutate it.
func (s *Snapshot) All() []Brand {
	return s.brands
}
