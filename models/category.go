package models

// Category represents a product category.
// It is owned by a single user; OwnerID may point at a user that does not exist.
type Category struct {
	ID      uint   `gorm:"primaryKey" yaml:"id"`
	Title   string `gorm:"not null" yaml:"title"`
	Icon    string `gorm:"not null" yaml:"icon"`
	OwnerID uint   `gorm:"index;not null" yaml:"ownerId"`
}

func (c *Category) TableName() string {
	return "categories"
}
