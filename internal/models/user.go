package models

// User represents a registered customer. Email is unique across all users.
type User struct {
	ID      uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"size:100;not null" json:"name"`
	Address *string `gorm:"size:200" json:"address"`
	Email   string  `gorm:"size:100;not null;uniqueIndex" json:"email"`

	// One user owns many orders; deleting the user removes them.
	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
