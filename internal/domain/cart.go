package domain

// CartItem is one product line in one user's cart. The (user_id, product_id)
// pair is the primary key, so the store itself rejects a second line for the
// same product even if two adds race past the service-level pre-check.
type CartItem struct {
	UserID    int `gorm:"primaryKey;column:user_id" json:"userId"`
	ProductID int `gorm:"primaryKey;column:product_id" json:"productId"`
	Quantity  int `gorm:"not null;column:quantity" json:"quantity"`
}

func (CartItem) TableName() string { return "carts" }
