package services

import (
	"errors"

	"github.com/commercekit/ecommerce-api/internal/models"
	"github.com/commercekit/ecommerce-api/internal/types"
	"gorm.io/gorm"
)

// ProductInput is the payload for creating a product. Price is a pointer
// so a missing price is distinguishable from a free product.
type ProductInput struct {
	ProductName string   `json:"product_name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
}

// ProductUpdateInput is the payload for partially updating a product.
type ProductUpdateInput struct {
	ProductName *string  `json:"product_name"`
	Price       *float64 `json:"price"`
}

// ListProducts retrieves all products
func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a product by id
func GetProduct(db *gorm.DB, id uint64) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Product not found")
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new product
func CreateProduct(db *gorm.DB, input ProductInput) (*models.Product, error) {
	product := models.Product{
		ProductName: input.ProductName,
		Price:       *input.Price,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&product).Error
	}); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct applies the supplied fields to an existing product
func UpdateProduct(db *gorm.DB, id uint64, input ProductUpdateInput) (*models.Product, error) {
	var product models.Product

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Product not found")
			}
			return err
		}

		if input.ProductName != nil {
			product.ProductName = *input.ProductName
		}
		if input.Price != nil {
			product.Price = *input.Price
		}

		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct removes a product. Association rows pointing at the product
// are cleared first so no order is left referencing a missing product.
func DeleteProduct(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Product not found")
			}
			return err
		}

		if err := tx.Model(&product).Association("Orders").Clear(); err != nil {
			return err
		}

		return tx.Delete(&product).Error
	})
}
