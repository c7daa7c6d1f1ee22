package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jruiz-dev/trendyshop/internal/catalog"
)

func (a *App) createProduct(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Product name:", a.out)
	if err != nil {
		return
	}
	category, err := getSimpleText(a.reader, "Category:", a.out)
	if err != nil {
		return
	}
	price, err := GetFloat(a.reader, "Price:", a.out)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description:", a.out)
	if err != nil {
		return
	}

	in := catalog.ProductInput{Name: name, Category: category, Price: price, Description: description}
	product, err := a.catalog.Create(ctx, in)
	if err != nil {
		a.reportError(err)
		return
	}

	fmt.Fprintf(a.out, "Product added with number %d.\n", product.Sequence)
}

func (a *App) listProducts(ctx context.Context) {
	products, err := a.catalog.List(ctx)
	if err != nil {
		a.reportError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products available.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%d. %s (%s) - %.2f €\n", p.Sequence, p.Name, p.Category, p.Price)
	}
}

// selectProduct lists the catalog and resolves a user-entered number to a
// product. Returns nil when the catalog is empty or the number is stale;
// a message has been printed in either case.
func (a *App) selectProduct(ctx context.Context, prompt string) *catalog.Product {
	products, err := a.catalog.List(ctx)
	if err != nil {
		a.reportError(err)
		return nil
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products available.")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%d. %s (%s) - %.2f €\n", p.Sequence, p.Name, p.Category, p.Price)
	}

	seq, err := GetInt(a.reader, prompt, a.out)
	if err != nil {
		return nil
	}
	product, err := a.catalog.GetBySequence(ctx, int64(seq))
	if err != nil {
		fmt.Fprintln(a.out, "The product does not exist.")
		return nil
	}
	return product
}

func (a *App) showProduct(ctx context.Context) {
	product := a.selectProduct(ctx, "Product number to view:")
	if product == nil {
		return
	}

	pretty, err := json.MarshalIndent(product, "", "  ")
	if err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "\nProduct details:")
	fmt.Fprintln(a.out, string(pretty))
}

func (a *App) editProduct(ctx context.Context) {
	product := a.selectProduct(ctx, "Product number to edit:")
	if product == nil {
		return
	}

	name, err := getSimpleText(a.reader, "New name:", a.out)
	if err != nil {
		return
	}
	category, err := getSimpleText(a.reader, "New category:", a.out)
	if err != nil {
		return
	}
	price, err := GetFloat(a.reader, "New price:", a.out)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "New description:", a.out)
	if err != nil {
		return
	}

	in := catalog.ProductInput{Name: name, Category: category, Price: price, Description: description}
	if err := a.catalog.Update(ctx, product.ID, in); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Product updated successfully.")
}

func (a *App) deleteProduct(ctx context.Context) {
	product := a.selectProduct(ctx, "Product number to delete:")
	if product == nil {
		return
	}

	if err := a.catalog.Delete(ctx, product.ID); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Product deleted successfully.")
}
