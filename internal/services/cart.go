package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumitk238/shopping-cart/internal/data/repos"
	types "github.com/sumitk238/shopping-cart/internal/domain"
	pkgerrors "github.com/sumitk238/shopping-cart/internal/pkg/errors"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"gorm.io/gorm"
)

// CartService is the cart mutation and aggregation engine. A line item
// exists with quantity in [1, maxAllowed]; a quantity of zero means the
// line does not exist. Every mutation is all-or-nothing.
type CartService interface {
	AddItem(ctx context.Context, userID, productID, quantity int) error
	UpdateItem(ctx context.Context, userID, productID, changed int) error
	DeleteItem(ctx context.Context, userID, productID int) error
	CountItem(ctx context.Context, userID, productID int) (int, error)
	GetCartDetails(ctx context.Context, userID int) (*types.CartDetails, error)
}

type cartService struct {
	log         *logger.Logger
	cartRepo    repos.CartRepo
	productRepo repos.ProductRepo
	maxAllowed  int
}

func NewCartService(log *logger.Logger, cartRepo repos.CartRepo, productRepo repos.ProductRepo, maxAllowed int) CartService {
	serviceLog := log.With("service", "CartService")
	return &cartService{
		log:         serviceLog,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		maxAllowed:  maxAllowed,
	}
}

// AddItem inserts a new line item. The caller validates that the user and
// product exist and that quantity is within [1, maxAllowed]. The store's
// composite key is the final backstop when two adds race past the pre-check.
func (cs *cartService) AddItem(ctx context.Context, userID, productID, quantity int) error {
	existing, err := cs.cartRepo.FindByUserAndProduct(ctx, nil, userID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("product %d: %w", productID, pkgerrors.ErrDuplicateItem)
	}

	item := &types.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := cs.cartRepo.Insert(ctx, nil, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product %d: %w", productID, pkgerrors.ErrDuplicateItem)
		}
		return err
	}
	return nil
}

// UpdateItem applies changed to the line's quantity. A resulting quantity of
// exactly zero deletes the line; anything outside [0, maxAllowed] is
// rejected with no state change. The read and the conditional write form a
// compare-and-swap loop, so two concurrent updates on the same line never
// lose a delta: a failed swap means the other writer committed first, and
// the loop re-reads the new state.
func (cs *cartService) UpdateItem(ctx context.Context, userID, productID, changed int) error {
	for {
		item, err := cs.cartRepo.FindByUserAndProduct(ctx, nil, userID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("product %d: %w", productID, pkgerrors.ErrItemNotFound)
		}

		updatedQuantity := item.Quantity + changed
		if updatedQuantity < 0 || updatedQuantity > cs.maxAllowed {
			return fmt.Errorf("%w: quantity after change must be within 0 and %d", pkgerrors.ErrQuantityOutOfRange, cs.maxAllowed)
		}

		var applied bool
		if updatedQuantity == 0 {
			applied, err = cs.cartRepo.DeleteIfQuantity(ctx, nil, userID, productID, item.Quantity)
		} else {
			applied, err = cs.cartRepo.CompareAndSetQuantity(ctx, nil, userID, productID, item.Quantity, updatedQuantity)
		}
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
		cs.log.Debug("Lost quantity swap, retrying", "user_id", userID, "product_id", productID)
	}
}

// DeleteItem removes the line unconditionally.
func (cs *cartService) DeleteItem(ctx context.Context, userID, productID int) error {
	removed, err := cs.cartRepo.DeleteByUserAndProduct(ctx, nil, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("product %d: %w", productID, pkgerrors.ErrItemNotFound)
	}
	return nil
}

// CountItem returns the line's quantity, or zero when the line does not
// exist. Absence is not an error here.
func (cs *cartService) CountItem(ctx context.Context, userID, productID int) (int, error) {
	item, err := cs.cartRepo.FindByUserAndProduct(ctx, nil, userID, productID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}
	return item.Quantity, nil
}

// GetCartDetails joins the user's line items with current catalog costs and
// sums quantity times cost. A line referencing a product missing from the
// catalog means the store and catalog diverged; that is surfaced as a data
// integrity failure rather than a wrong total.
func (cs *cartService) GetCartDetails(ctx context.Context, userID int) (*types.CartDetails, error) {
	items, err := cs.cartRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	details := &types.CartDetails{ProductDetails: make([]types.ProductDetails, 0, len(items))}
	for _, item := range items {
		product, err := cs.productRepo.GetByID(ctx, nil, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			cs.log.Error("Cart references missing product", "user_id", userID, "product_id", item.ProductID)
			return nil, fmt.Errorf("product %d: %w", item.ProductID, pkgerrors.ErrDataIntegrity)
		}
		details.ProductDetails = append(details.ProductDetails, types.ProductDetails{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Cost:      product.Cost,
		})
		details.TotalCost += float64(item.Quantity) * product.Cost
	}
	return details, nil
}
