package listing

import "github.com/mytheresa/product-categories/models"

// Resolve joins every product with its category and the category's owner.
// It returns exactly one row per product, in product order. When an id
// occurs more than once the first record wins.
func Resolve(t models.Tables) []ProductRow {
	users := make(map[uint]*models.User, len(t.Users))
	for i := range t.Users {
		if _, ok := users[t.Users[i].ID]; !ok {
			users[t.Users[i].ID] = &t.Users[i]
		}
	}

	categories := make(map[uint]*models.Category, len(t.Categories))
	for i := range t.Categories {
		if _, ok := categories[t.Categories[i].ID]; !ok {
			categories[t.Categories[i].ID] = &t.Categories[i]
		}
	}

	rows := make([]ProductRow, len(t.Products))
	for i, p := range t.Products {
		row := ProductRow{Product: p}
		if c, ok := categories[p.CategoryID]; ok {
			row.Category = c
			row.User = users[c.OwnerID]
		}
		rows[i] = row
	}
	return rows
}
