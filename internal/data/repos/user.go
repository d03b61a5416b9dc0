package repos

import (
	"context"
	"errors"

	types "github.com/sumitk238/shopping-cart/internal/domain"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"gorm.io/gorm"
)

type UserRepo interface {
	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, tx *gorm.DB, userID int) (*types.User, error)
	Exists(ctx context.Context, tx *gorm.DB, userID int) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, users []*types.User) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ur.db
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID int) (*types.User, error) {
	var user types.User
	err := ur.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepo) Exists(ctx context.Context, tx *gorm.DB, userID int) (bool, error) {
	var count int64
	err := ur.conn(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) error {
	if len(users) == 0 {
		return nil
	}
	return ur.conn(tx).WithContext(ctx).Create(&users).Error
}
