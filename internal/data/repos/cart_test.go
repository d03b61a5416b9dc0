package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/sumitk238/shopping-cart/internal/data/repos/testutil"
	types "github.com/sumitk238/shopping-cart/internal/domain"
	"gorm.io/gorm"
)

func TestCartRepo_InsertAndFind(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	item := &types.CartItem{UserID: 1, ProductID: 10, Quantity: 3}
	if err := repo.Insert(ctx, nil, item); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.FindByUserAndProduct(ctx, nil, 1, 10)
	if err != nil {
		t.Fatalf("FindByUserAndProduct: %v", err)
	}
	if got == nil || got.Quantity != 3 {
		t.Fatalf("FindByUserAndProduct: unexpected result: %+v", got)
	}

	absent, err := repo.FindByUserAndProduct(ctx, nil, 1, 99)
	if err != nil {
		t.Fatalf("FindByUserAndProduct (absent): %v", err)
	}
	if absent != nil {
		t.Fatalf("FindByUserAndProduct (absent): expected nil, got %+v", absent)
	}
}

func TestCartRepo_InsertDuplicateKey(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	if err := repo.Insert(ctx, nil, &types.CartItem{UserID: 1, ProductID: 10, Quantity: 3}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err := repo.Insert(ctx, nil, &types.CartItem{UserID: 1, ProductID: 10, Quantity: 1})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("Insert (duplicate): expected gorm.ErrDuplicatedKey, got %v", err)
	}

	// same product in another user's cart is a different key
	if err := repo.Insert(ctx, nil, &types.CartItem{UserID: 2, ProductID: 10, Quantity: 1}); err != nil {
		t.Fatalf("Insert (other user): %v", err)
	}
}

func TestCartRepo_CompareAndSetQuantity(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedCartItem(t, ctx, db, 1, 10, 3)

	applied, err := repo.CompareAndSetQuantity(ctx, nil, 1, 10, 3, 5)
	if err != nil {
		t.Fatalf("CompareAndSetQuantity: %v", err)
	}
	if !applied {
		t.Fatalf("CompareAndSetQuantity: expected swap to apply")
	}

	// stale expected value must not apply
	applied, err = repo.CompareAndSetQuantity(ctx, nil, 1, 10, 3, 4)
	if err != nil {
		t.Fatalf("CompareAndSetQuantity (stale): %v", err)
	}
	if applied {
		t.Fatalf("CompareAndSetQuantity (stale): expected swap to be rejected")
	}

	got, err := repo.FindByUserAndProduct(ctx, nil, 1, 10)
	if err != nil {
		t.Fatalf("FindByUserAndProduct: %v", err)
	}
	if got.Quantity != 5 {
		t.Fatalf("quantity: expected 5, got %d", got.Quantity)
	}
}

func TestCartRepo_DeleteIfQuantity(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedCartItem(t, ctx, db, 1, 10, 2)

	removed, err := repo.DeleteIfQuantity(ctx, nil, 1, 10, 3)
	if err != nil {
		t.Fatalf("DeleteIfQuantity (stale): %v", err)
	}
	if removed {
		t.Fatalf("DeleteIfQuantity (stale): expected no removal")
	}

	removed, err = repo.DeleteIfQuantity(ctx, nil, 1, 10, 2)
	if err != nil {
		t.Fatalf("DeleteIfQuantity: %v", err)
	}
	if !removed {
		t.Fatalf("DeleteIfQuantity: expected removal")
	}

	got, err := repo.FindByUserAndProduct(ctx, nil, 1, 10)
	if err != nil {
		t.Fatalf("FindByUserAndProduct: %v", err)
	}
	if got != nil {
		t.Fatalf("expected line to be gone, got %+v", got)
	}
}

func TestCartRepo_DeleteByUserAndProduct(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedCartItem(t, ctx, db, 1, 10, 2)

	removed, err := repo.DeleteByUserAndProduct(ctx, nil, 1, 10)
	if err != nil {
		t.Fatalf("DeleteByUserAndProduct: %v", err)
	}
	if !removed {
		t.Fatalf("DeleteByUserAndProduct: expected removal")
	}

	removed, err = repo.DeleteByUserAndProduct(ctx, nil, 1, 10)
	if err != nil {
		t.Fatalf("DeleteByUserAndProduct (absent): %v", err)
	}
	if removed {
		t.Fatalf("DeleteByUserAndProduct (absent): expected no removal")
	}
}

func TestCartRepo_ListByUserOrder(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCartRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedCartItem(t, ctx, db, 1, 20, 15)
	testutil.SeedCartItem(t, ctx, db, 1, 10, 5)
	testutil.SeedCartItem(t, ctx, db, 2, 30, 1)

	items, err := repo.ListByUser(ctx, nil, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("ListByUser: expected 2 items, got %d", len(items))
	}
	if items[0].ProductID != 10 || items[1].ProductID != 20 {
		t.Fatalf("ListByUser: unexpected order: %+v", items)
	}

	empty, err := repo.ListByUser(ctx, nil, 3)
	if err != nil {
		t.Fatalf("ListByUser (empty): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("ListByUser (empty): expected no items, got %+v", empty)
	}
}
