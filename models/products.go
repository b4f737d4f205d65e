package models

// Product represents a product in the catalog.
// CategoryID is a plain reference with no foreign key: a product may point
// at a category that does not exist.
type Product struct {
	ID         uint   `gorm:"primaryKey" yaml:"id"`
	Name       string `gorm:"not null" yaml:"name"`
	CategoryID uint   `gorm:"index;not null" yaml:"categoryId"`
}

func (p *Product) TableName() string {
	return "products"
}
