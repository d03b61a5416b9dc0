package repos

import (
	"context"
	"errors"

	types "github.com/sumitk238/shopping-cart/internal/domain"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"gorm.io/gorm"
)

// CartRepo is the keyed store of cart line items addressed by
// (user_id, product_id).
type CartRepo interface {
	// FindByUserAndProduct returns (nil, nil) when no line exists for the pair.
	FindByUserAndProduct(ctx context.Context, tx *gorm.DB, userID, productID int) (*types.CartItem, error)
	// Insert fails with gorm.ErrDuplicatedKey when a line already exists.
	Insert(ctx context.Context, tx *gorm.DB, item *types.CartItem) error
	// CompareAndSetQuantity replaces the quantity only if the stored value
	// still equals oldQuantity. Returns false when another writer got there
	// first (or the line is gone).
	CompareAndSetQuantity(ctx context.Context, tx *gorm.DB, userID, productID, oldQuantity, newQuantity int) (bool, error)
	// DeleteIfQuantity removes the line only if the stored quantity still
	// equals quantity.
	DeleteIfQuantity(ctx context.Context, tx *gorm.DB, userID, productID, quantity int) (bool, error)
	// DeleteByUserAndProduct removes the line unconditionally and reports
	// whether a row was removed.
	DeleteByUserAndProduct(ctx context.Context, tx *gorm.DB, userID, productID int) (bool, error)
	// ListByUser returns the user's lines ordered by product id.
	ListByUser(ctx context.Context, tx *gorm.DB, userID int) ([]types.CartItem, error)
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	repoLog := baseLog.With("repo", "CartRepo")
	return &cartRepo{db: db, log: repoLog}
}

func (cr *cartRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.db
}

func (cr *cartRepo) FindByUserAndProduct(ctx context.Context, tx *gorm.DB, userID, productID int) (*types.CartItem, error) {
	var item types.CartItem
	err := cr.conn(tx).WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (cr *cartRepo) Insert(ctx context.Context, tx *gorm.DB, item *types.CartItem) error {
	return cr.conn(tx).WithContext(ctx).Create(item).Error
}

func (cr *cartRepo) CompareAndSetQuantity(ctx context.Context, tx *gorm.DB, userID, productID, oldQuantity, newQuantity int) (bool, error) {
	res := cr.conn(tx).WithContext(ctx).
		Model(&types.CartItem{}).
		Where("user_id = ? AND product_id = ? AND quantity = ?", userID, productID, oldQuantity).
		Update("quantity", newQuantity)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (cr *cartRepo) DeleteIfQuantity(ctx context.Context, tx *gorm.DB, userID, productID, quantity int) (bool, error) {
	res := cr.conn(tx).WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND quantity = ?", userID, productID, quantity).
		Delete(&types.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (cr *cartRepo) DeleteByUserAndProduct(ctx context.Context, tx *gorm.DB, userID, productID int) (bool, error) {
	res := cr.conn(tx).WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&types.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (cr *cartRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID int) ([]types.CartItem, error) {
	var items []types.CartItem
	err := cr.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("product_id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
