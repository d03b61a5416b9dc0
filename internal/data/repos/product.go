package repos

import (
	"context"
	"errors"

	types "github.com/sumitk238/shopping-cart/internal/domain"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepo interface {
	// GetByID returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, tx *gorm.DB, productID int) (*types.Product, error)
	Create(ctx context.Context, tx *gorm.DB, products []*types.Product) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *productRepo) GetByID(ctx context.Context, tx *gorm.DB, productID int) (*types.Product, error) {
	var product types.Product
	err := pr.conn(tx).WithContext(ctx).
		Where("product_id = ?", productID).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) error {
	if len(products) == 0 {
		return nil
	}
	return pr.conn(tx).WithContext(ctx).Create(&products).Error
}
