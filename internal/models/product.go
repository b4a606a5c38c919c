package models

// Product represents an item that can be placed on orders.
type Product struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string  `gorm:"size:100;not null" json:"product_name"`
	Price       float64 `gorm:"not null" json:"price"`

	Orders []Order `gorm:"many2many:order_product;" json:"-"`
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}
