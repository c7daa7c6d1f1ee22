package catalog

// Product is one catalog entry. ID is the store-assigned opaque id; Sequence
// is the user-facing 1-based ordinal, assigned once at creation and never
// reused, even after the product is deleted.
type Product struct {
	ID          string  `json:"id"`
	Sequence    int64   `json:"sequence"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ProductInput carries the caller-editable fields, used for both create and
// update. Sequence and ID are never caller-supplied.
type ProductInput struct {
	Name        string  `validate:"required"`
	Category    string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Description string  `validate:"-"`
}
