package model

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Price       int64     `gorm:"not null" json:"price"` // smallest currency unit
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:255" json:"image"` // stored path, upload handled elsewhere
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Order struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    uint  `gorm:"index;not null" json:"userId"`
	ProductID uint  `gorm:"index;not null" json:"productId"`
	Quantity  int64 `gorm:"not null" json:"quantity"`
	// Unit price is copied in at creation time; later catalog edits must not
	// change a committed order.
	TotalPrice  int64       `gorm:"not null" json:"totalPrice"`
	PlatformFee int64       `gorm:"not null" json:"platformFee"`
	GrossTotal  int64       `gorm:"not null" json:"grossTotal"`
	Status      OrderStatus `gorm:"size:32;index;not null" json:"status"`
	CreatedAt   time.Time   `gorm:"index" json:"createdAt"`

	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Role      string    `gorm:"size:32;not null" json:"role"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
