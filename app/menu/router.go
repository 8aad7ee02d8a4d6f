package menu

import "catalogbot/app/catalog"

// WarnBrandNotFound is prepended to the root text when a brand token points
// at a brand missing from the snapshot (stale button after a catalog update).
const WarnBrandNotFound = "Brand not found."

// Resolve maps a raw action token to the next screen against the given
// catalog snapshot. It is stateless: the token alone determines the target,
// so it is safe to call concurrently and survives restarts with no session
// loss.
//
// Errors: *MalformedTokenError for an unrecognized token shape,
// *catalog.NotFoundError when a product token references a missing entry.
// A missing brand is recovered locally as Root with a warning.
func Resolve(raw string, cat *catalog.Snapshot) (Screen, error) {
	tok, err := ParseToken(raw)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenHome:
		return Root{}, nil
	case TokenNews:
		return NewsList{}, nil
	case TokenBrand:
		if !cat.HasBrand(tok.Brand) {
			return Root{Warning: WarnBrandNotFound}, nil
		}
		return BrandList{Brand: tok.Brand}, nil
	case TokenProduct:
		if _, err := cat.Instruction(tok.Brand, tok.Product); err != nil {
			return nil, err
		}
		return ProductDetail{Brand: tok.Brand, Product: tok.Product}, nil
	default:
		return nil, &MalformedTokenError{Raw: raw}
	}
}
