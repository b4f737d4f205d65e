package listing

import "github.com/mytheresa/product-categories/models"

// Catalog serves the base tables and their joined rows. The rows are
// resolved once; neither the tables nor the rows change afterwards, so a
// Catalog may be shared between goroutines.
type Catalog struct {
	tables models.Tables
	rows   []ProductRow
}

func NewCatalog(t models.Tables) *Catalog {
	return &Catalog{
		tables: t,
		rows:   Resolve(t),
	}
}

// GetRows returns the joined rows in product order. Callers must not modify
// the returned slice.
func (c *Catalog) GetRows() ([]ProductRow, error) {
	return c.rows, nil
}

func (c *Catalog) GetRowByID(id uint) (*ProductRow, error) {
	for i := range c.rows {
		if c.rows[i].Product.ID == id {
			row := c.rows[i]
			return &row, nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (c *Catalog) GetAllUsers() ([]models.User, error) {
	return c.tables.Users, nil
}

func (c *Catalog) GetAllCategories() ([]models.Category, error) {
	return c.tables.Categories, nil
}
