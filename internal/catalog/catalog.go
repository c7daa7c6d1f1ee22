// Package catalog owns the product collection: creation with race-free
// sequence-number allocation, ordered listing, and guarded edits/deletes.
package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/logging"
	"github.com/jruiz-dev/trendyshop/internal/store"
)

const (
	productsCollection = "products"
	sequenceCounter    = "product_sequence"
	sequenceField      = "sequence"
)

type Catalog struct {
	store    store.Store
	validate *validator.Validate
	logger   logging.Logger
}

func New(st store.Store, logger logging.Logger) *Catalog {
	return &Catalog{
		store:    st,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With("component", "catalog"),
	}
}

// Create allocates the next sequence number and persists the product. The
// counter lives in the store and increments atomically, so two concurrent
// creators can never receive the same number, and a deleted product's number
// is never handed out again.
func (c *Catalog) Create(ctx context.Context, in ProductInput) (*Product, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	seq, err := c.store.NextValue(ctx, sequenceCounter)
	if err != nil {
		return nil, fmt.Errorf("allocating sequence number: %w", err)
	}

	doc := map[string]any{
		sequenceField: seq,
		"name":        in.Name,
		"category":    in.Category,
		"price":       in.Price,
		"description": in.Description,
	}
	id, err := c.store.Create(ctx, productsCollection, doc)
	if err != nil {
		return nil, fmt.Errorf("storing product: %w", err)
	}

	c.logger.Info(ctx, "product created", "id", id, "sequence", seq)
	return &Product{
		ID:          id,
		Sequence:    seq,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
	}, nil
}

// List returns the whole catalog in ascending sequence order. An empty
// catalog is an empty slice, never an error.
func (c *Catalog) List(ctx context.Context) ([]Product, error) {
	docs, err := c.store.List(ctx, productsCollection, sequenceField, true)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	products := make([]Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, *productFromDoc(doc.ID, doc.Data))
	}
	return products, nil
}

// Get returns the product stored under the opaque id, or common.ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (*Product, error) {
	doc, err := c.store.Get(ctx, productsCollection, id)
	if err != nil {
		return nil, err
	}
	return productFromDoc(id, doc), nil
}

// GetBySequence resolves a user-facing sequence number to a product. The
// menus address products this way.
func (c *Catalog) GetBySequence(ctx context.Context, seq int64) (*Product, error) {
	products, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Sequence == seq {
			return &products[i], nil
		}
	}
	return nil, common.ErrNotFound
}

// Update rewrites the editable fields of an existing product. The existence
// check happens before the write, so a concurrently deleted product is not
// silently resurrected; sequence and id are never touched.
func (c *Catalog) Update(ctx context.Context, id string, in ProductInput) error {
	if err := c.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	if _, err := c.store.Get(ctx, productsCollection, id); err != nil {
		return err
	}

	partial := map[string]any{
		"name":        in.Name,
		"category":    in.Category,
		"price":       in.Price,
		"description": in.Description,
	}
	if err := c.store.Update(ctx, productsCollection, id, partial); err != nil {
		return err
	}

	c.logger.Info(ctx, "product updated", "id", id)
	return nil
}

// Delete removes a product. Its sequence number is retired with it.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	if _, err := c.store.Get(ctx, productsCollection, id); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, productsCollection, id); err != nil {
		return err
	}

	c.logger.Info(ctx, "product deleted", "id", id)
	return nil
}

func productFromDoc(id string, doc map[string]any) *Product {
	return &Product{
		ID:          id,
		Sequence:    store.Int64Field(doc, sequenceField),
		Name:        store.StringField(doc, "name"),
		Category:    store.StringField(doc, "category"),
		Price:       store.Float64Field(doc, "price"),
		Description: store.StringField(doc, "description"),
	}
}
