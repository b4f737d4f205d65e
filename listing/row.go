// Package listing joins the catalog's base tables into product rows and
// narrows them for display.
package listing

import "github.com/mytheresa/product-categories/models"

// ProductRow is one product joined with its category and that category's
// owner. Category and User are nil when the reference does not resolve.
type ProductRow struct {
	Product  models.Product
	Category *models.Category
	User     *models.User
}

// CategoryLabel renders the category the way the table shows it.
func (r ProductRow) CategoryLabel() string {
	if r.Category == nil {
		return ""
	}
	return r.Category.Icon + " - " + r.Category.Title
}

// UserName returns the owner's name, or "" when there is none.
func (r ProductRow) UserName() string {
	if r.User == nil {
		return ""
	}
	return r.User.Name
}
