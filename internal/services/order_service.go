package services

import (
	"errors"
	"time"

	"github.com/commercekit/ecommerce-api/internal/models"
	"github.com/commercekit/ecommerce-api/internal/types"
	"gorm.io/gorm"
)

// OrderInput is the payload for creating an order. OrderDate is optional
// and defaults to the current time.
type OrderInput struct {
	UserID    uint64          `json:"user_id" validate:"required"`
	OrderDate *types.FlexTime `json:"order_date"`
}

// CreateOrder inserts a new order for an existing user
func CreateOrder(db *gorm.DB, input OrderInput) (*models.Order, error) {
	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = input.OrderDate.Time()
	}

	order := models.Order{
		OrderDate: orderDate,
		UserID:    input.UserID,
		Products:  []models.Product{},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", input.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return types.NotFound("User not found")
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// AddProductToOrder associates a product with an order, rejecting
// duplicates with a direct existence check against order_product.
func AddProductToOrder(db *gorm.DB, orderID, productID uint64) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Order not found")
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Product not found")
			}
			return err
		}

		associated, err := orderHasProduct(tx, orderID, productID)
		if err != nil {
			return err
		}
		if associated {
			return types.Validation("Product already in order")
		}

		if err := tx.Model(&order).Association("Products").Append(&product); err != nil {
			return err
		}

		return tx.Preload("Products").First(&order, orderID).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// RemoveProductFromOrder deletes the association between an order and a
// product. Both must exist and the product must currently be on the order.
func RemoveProductFromOrder(db *gorm.DB, orderID, productID uint64) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Order not found")
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Product not found")
			}
			return err
		}

		associated, err := orderHasProduct(tx, orderID, productID)
		if err != nil {
			return err
		}
		if !associated {
			return types.Validation("Product not in order")
		}

		if err := tx.Model(&order).Association("Products").Delete(&product); err != nil {
			return err
		}

		return tx.Preload("Products").First(&order, orderID).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListUserOrders retrieves all orders owned by a user, products included
func ListUserOrders(db *gorm.DB, userID uint64) ([]models.Order, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, types.NotFound("User not found")
	}

	orders := []models.Order{}
	if err := db.Preload("Products").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

// ListOrderProducts retrieves the products associated with an order
func ListOrderProducts(db *gorm.DB, orderID uint64) ([]models.Product, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Order not found")
		}
		return nil, err
	}

	products := []models.Product{}
	if err := db.Model(&order).Association("Products").Find(&products); err != nil {
		return nil, err
	}

	return products, nil
}

// orderHasProduct checks membership in the association table directly
func orderHasProduct(tx *gorm.DB, orderID, productID uint64) (bool, error) {
	var count int64
	err := tx.Table("order_product").
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error
	return count > 0, err
}
