package services

import (
	"context"

	"github.com/sumitk238/shopping-cart/internal/data/repos"
	types "github.com/sumitk238/shopping-cart/internal/domain"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
)

type ProductService interface {
	// GetProductByID returns (nil, nil) when the product does not exist.
	GetProductByID(ctx context.Context, productID int) (*types.Product, error)
}

type productService struct {
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{log: serviceLog, productRepo: productRepo}
}

func (ps *productService) GetProductByID(ctx context.Context, productID int) (*types.Product, error) {
	return ps.productRepo.GetByID(ctx, nil, productID)
}
