package services

import (
	"context"

	"github.com/sumitk238/shopping-cart/internal/data/repos"
	types "github.com/sumitk238/shopping-cart/internal/domain"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
)

type UserService interface {
	// GetUserByID returns (nil, nil) when the user does not exist.
	GetUserByID(ctx context.Context, userID int) (*types.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetUserByID(ctx context.Context, userID int) (*types.User, error) {
	return us.userRepo.GetByID(ctx, nil, userID)
}
