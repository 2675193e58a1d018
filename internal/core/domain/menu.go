package domain

import (
	"strings"
	"time"
)

// Category groups menu items by the meal they are served at.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryBreakfast, CategoryLunch, CategoryDinner}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts untrusted input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// MenuItem is a single dish on the public menu.
type MenuItem struct {
	ID            string    `json:"id"`
	Category      Category  `json:"category"`
	NameES        string    `json:"name_es"`
	NameEN        string    `json:"name_en"`
	DescriptionES string    `json:"description_es"`
	DescriptionEN string    `json:"description_en"`
	Price         float64   `json:"price"`
	Image         *string   `json:"image"`
	IsFeatured    bool      `json:"is_featured"`
	IsAvailable   bool      `json:"is_available"`
	SortOrder     int       `json:"sort_order"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MenuItemPatch carries a partial menu item update. A nil field means
// "no change".
type MenuItemPatch struct {
	Category      *Category
	NameES        *string
	NameEN        *string
	DescriptionES *string
	DescriptionEN *string
	Price         *float64
	Image         *string
	IsFeatured    *bool
	IsAvailable   *bool
	SortOrder     *int
	Tags          *[]string
}

// MenuFilter restricts a catalog listing. A nil Category imposes no
// restriction; AvailableOnly excludes items with IsAvailable=false.
type MenuFilter struct {
	Category      *Category
	AvailableOnly bool
}

// ReorderEntry assigns a new sort order to one item.
type ReorderEntry struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}
