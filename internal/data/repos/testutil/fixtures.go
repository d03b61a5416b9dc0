package testutil

import (
	"context"
	"testing"

	types "github.com/sumitk238/shopping-cart/internal/domain"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, db *gorm.DB, userID int) *types.User {
	tb.Helper()
	u := &types.User{UserID: userID, Name: "test user"}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProduct(tb testing.TB, ctx context.Context, db *gorm.DB, productID int, cost float64) *types.Product {
	tb.Helper()
	p := &types.Product{ProductID: productID, Name: "test product", Cost: cost}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedCartItem(tb testing.TB, ctx context.Context, db *gorm.DB, userID, productID, quantity int) *types.CartItem {
	tb.Helper()
	item := &types.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		tb.Fatalf("seed cart item: %v", err)
	}
	return item
}
