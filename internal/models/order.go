package models

import "time"

// Order represents a purchase belonging to one user. Products are attached
// through the order_product association table, which keys on
// (order_id, product_id) so a product cannot appear on an order twice.
type Order struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderDate time.Time `gorm:"not null" json:"order_date"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`

	Products []Product `gorm:"many2many:order_product;" json:"products"`
}

// TableName overrides the table name for Order
func (Order) TableName() string {
	return "orders"
}
