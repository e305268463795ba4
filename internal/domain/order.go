package domain

import "time"

// Order is created atomically at checkout and immutable afterwards.
type Order struct {
	ID         int64       `json:"id,string"`
	UserID     int64       `gorm:"index" json:"user_id,string"`
	TotalPrice float64     `json:"total_price"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "shop_order"
}

// OrderItem snapshots the product name and unit price at purchase time so
// historical orders stay accurate after catalog edits. ProductID is a soft
// reference and is not required to remain valid.
type OrderItem struct {
	ID              int64   `json:"id,string"`
	OrderID         int64   `gorm:"index" json:"order_id,string"`
	ProductID       int64   `json:"product_id,string"`
	ProductName     string  `gorm:"size:200" json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

// TableName Specify table name
func (OrderItem) TableName() string {
	return "shop_order_item"
}
