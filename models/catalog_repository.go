package models

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository reads and seeds the base tables in a SQL database.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

func (r *CatalogRepository) GetAllUsers() ([]User, error) {
	var users []User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *CatalogRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// LoadTables reads all three tables and validates them.
func (r *CatalogRepository) LoadTables() (Tables, error) {
	var (
		t   Tables
		err error
	)

	if t.Users, err = r.GetAllUsers(); err != nil {
		return Tables{}, fmt.Errorf("load users: %w", err)
	}
	if t.Categories, err = r.GetAllCategories(); err != nil {
		return Tables{}, fmt.Errorf("load categories: %w", err)
	}
	if t.Products, err = r.GetAllProducts(); err != nil {
		return Tables{}, fmt.Errorf("load products: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// Migrate creates or updates the schema for the base tables.
func (r *CatalogRepository) Migrate() error {
	return r.db.AutoMigrate(&User{}, &Category{}, &Product{})
}

// Seed upserts every record of t in a single transaction.
func (r *CatalogRepository) Seed(t Tables) error {
	if err := t.Validate(); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(t.Users) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&t.Users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		if len(t.Categories) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&t.Categories).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
		}
		if len(t.Products) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&t.Products).Error; err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}
		return nil
	})
}
