package domain

// Product is read-only from the cart's perspective; the catalog owns it.
type Product struct {
	ProductID int     `gorm:"primaryKey;autoIncrement;column:product_id" json:"productId"`
	Name      string  `gorm:"not null;column:name" json:"name"`
	Details   string  `gorm:"column:details" json:"details"`
	Cost      float64 `gorm:"not null;column:cost" json:"cost"`
}

func (Product) TableName() string { return "products" }
