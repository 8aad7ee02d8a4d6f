package menu

// Screen is the abstract menu state produced by Resolve and consumed by
// Render. Screens are transient: created per interaction, discarded after
// rendering. The chat message on the user's side is the only cursor.
type Screen interface {
	screen()
}

// Root is the brand overview. Warning, when non-empty, is prepended to the
// welcome text (used when a brand token pointed at a missing brand).
type Root struct {
	Warning string
}

// BrandList shows the products of one brand.
type BrandList struct {
	Brand string
}

// ProductDetail shows a product's usage instruction.
type ProductDetail struct {
	Brand   string
	Product string
}

// NewsList shows the news feed.
type NewsList struct{}

func (Root) screen()          {}
func (BrandList) screen()     {}
func (ProductDetail) screen() {}
func (NewsList) screen()      {}
