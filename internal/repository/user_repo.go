package repository

import (
	"context"
	"time"

	"github.com/leon37/StudentHub/internal/model"
	"gorm.io/gorm"
)

// UserRepo is the storage contract for user identities.
type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// FindByUsernameOrEmail returns every user holding either key (at most two).
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]model.User, error)
	// RecordLogin bumps the login counter and appends a history entry atomically.
	RecordLogin(ctx context.Context, userID string, at time.Time, ip *string) error
	// ListAll orders by last login, most recent first; users who never logged in come last.
	ListAll(ctx context.Context) ([]model.User, error)
	// ListWithLoginHistory returns users that have logged in, with their history preloaded.
	ListWithLoginHistory(ctx context.Context) ([]model.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate("create user", r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate("get user by username", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]model.User, error) {
	users := make([]model.User, 0, 2)
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		Find(&users).Error
	if err != nil {
		return nil, translate("find user by username or email", err)
	}
	return users, nil
}

func (r *UserRepository) RecordLogin(ctx context.Context, userID string, at time.Time, ip *string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"login_count": gorm.Expr("login_count + ?", 1),
				"last_login":  at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&model.LoginEvent{UserID: userID, At: at, IP: ip}).Error
	})
	return translate("record login", err)
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.db.WithContext(ctx).
		Order("CASE WHEN last_login IS NULL THEN 1 ELSE 0 END").
		Order("last_login DESC").
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, translate("list users", err)
	}
	return users, nil
}

func (r *UserRepository) ListWithLoginHistory(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.db.WithContext(ctx).
		Preload("LoginHistory", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("at ASC").Order("id ASC")
		}).
		Where("last_login IS NOT NULL").
		Order("last_login DESC").
		Find(&users).Error
	if err != nil {
		return nil, translate("list users with login history", err)
	}
	return users, nil
}
