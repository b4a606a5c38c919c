package services

import (
	"errors"

	"github.com/commercekit/ecommerce-api/internal/models"
	"github.com/commercekit/ecommerce-api/internal/types"
	"gorm.io/gorm"
)

// UserInput is the payload for creating a user.
type UserInput struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
	Email   string  `json:"email" validate:"required,email"`
}

// UserUpdateInput is the payload for partially updating a user. Pointer
// fields distinguish "not supplied" from "supplied as empty"; the nullable
// address additionally keeps explicit null apart from absent, so a null
// clears the stored value.
type UserUpdateInput struct {
	Name    *string          `json:"name"`
	Address types.NullString `json:"address"`
	Email   *string          `json:"email" validate:"omitempty,email"`
}

// ListUsers retrieves all users
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a user by id
func GetUser(db *gorm.DB, id uint64) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user after checking email uniqueness.
func CreateUser(db *gorm.DB, input UserInput) (*models.User, error) {
	user := models.User{
		Name:    input.Name,
		Address: input.Address,
		Email:   input.Email,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.Validation("Email already exists")
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser applies the supplied fields to an existing user. A changed
// email is re-checked for uniqueness against all other users.
func UpdateUser(db *gorm.DB, id uint64, input UserUpdateInput) (*models.User, error) {
	var user models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("User not found")
			}
			return err
		}

		if input.Email != nil && *input.Email != user.Email {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("email = ? AND id <> ?", *input.Email, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return types.Validation("Email already exists")
			}
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Address.Present {
			user.Address = input.Address.Value
		}
		if input.Email != nil {
			user.Email = *input.Email
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes a user and cascades to the user's orders. The cascade
// runs in application code so behavior is identical on every dialect:
// association rows of the user's orders go first, then the orders, then
// the user, all in one transaction.
func DeleteUser(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("User not found")
			}
			return err
		}

		var orderIDs []uint64
		if err := tx.Model(&models.Order{}).
			Where("user_id = ?", id).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}

		if len(orderIDs) > 0 {
			if err := tx.Exec("DELETE FROM order_product WHERE order_id IN ?", orderIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}
