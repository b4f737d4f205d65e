package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when two records of one table share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidSex is returned when a user's sex is neither "m" nor "f".
	ErrInvalidSex = errors.New("invalid sex")
)

// Tables holds the three base tables of the catalog.
// Once loaded they are treated as read-only.
type Tables struct {
	Users      []User     `yaml:"users"`
	Categories []Category `yaml:"categories"`
	Products   []Product  `yaml:"products"`
}

// Validate checks that ids are unique within each table and that every user
// has a known sex. Dangling references between tables are allowed.
func (t Tables) Validate() error {
	users := make(map[uint]struct{}, len(t.Users))
	for _, u := range t.Users {
		if _, ok := users[u.ID]; ok {
			return fmt.Errorf("users: %w: %d", ErrDuplicateID, u.ID)
		}
		users[u.ID] = struct{}{}
		if !u.Sex.Valid() {
			return fmt.Errorf("user %d: %w: %q", u.ID, ErrInvalidSex, u.Sex)
		}
	}

	categories := make(map[uint]struct{}, len(t.Categories))
	for _, c := range t.Categories {
		if _, ok := categories[c.ID]; ok {
			return fmt.Errorf("categories: %w: %d", ErrDuplicateID, c.ID)
		}
		categories[c.ID] = struct{}{}
	}

	products := make(map[uint]struct{}, len(t.Products))
	for _, p := range t.Products {
		if _, ok := products[p.ID]; ok {
			return fmt.Errorf("products: %w: %d", ErrDuplicateID, p.ID)
		}
		products[p.ID] = struct{}{}
	}

	return nil
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")
