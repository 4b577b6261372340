package models

import "fmt"

// Category is a product category as listed by the catalog API.
type Category struct {
	Slug string
	Name string
	URL  string
}

// Key is the identifier used in product requests and navigation params:
// the slug when the API provides one, otherwise the display name.
func (c Category) Key() string {
	if c.Slug != "" {
		return c.Slug
	}
	return c.Name
}

func (c Category) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Slug
}

// Product is one catalog item.
type Product struct {
	ID          int64
	Title       string
	Description string
	Thumbnail   string
	Price       float64
	Rating      float64
	Stock       int64
}

func (p Product) String() string {
	return fmt.Sprintf("#%d %s  $%.2f  rating %.1f  stock %d", p.ID, p.Title, p.Price, p.Rating, p.Stock)
}
