package domain

import "time"

// Product is a catalog item. Stock is decremented only by a successful
// checkout and never goes negative.
type Product struct {
	ID        int64     `json:"id,string" form:"id"`
	Name      string    `gorm:"index;size:200" json:"name" form:"name"`
	Price     float64   `json:"price" form:"price"`
	Stock     int       `json:"stock" form:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "shop_product"
}
