package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	accountModel "freelance-job-tracker/internal/account/model"
	"freelance-job-tracker/internal/database"
	jobModel "freelance-job-tracker/internal/job/model"
	"freelance-job-tracker/internal/user/model"
	appErrors "freelance-job-tracker/pkg/errors"
)

type UserRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(user).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique") {
			return appErrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).First(&user, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":       user.Name,
			"password":   user.Password,
			"updated_at": user.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}

	return nil
}

// SetResetToken attaches a reset token and expiry to the user, overwriting
// any previously issued token.
func (r *UserRepository) SetResetToken(ctx context.Context, userID uint, token string, expires time.Time) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_password_token":   token,
			"reset_password_expires": expires,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set reset token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

// GetUserByResetToken matches the stored token exactly and requires the
// expiry to be strictly in the future.
func (r *UserRepository) GetUserByResetToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expires > ?", token, time.Now()).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrResetTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}

	return &user, nil
}

// UpdatePassword writes the new hash and clears the reset fields in a single
// UPDATE, so a consumed token can never be replayed.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password":               passwordHash,
			"reset_password_token":   nil,
			"reset_password_expires": nil,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes the user together with all owned accounts and their
// jobs in one transaction.
func (r *UserRepository) DeleteUser(ctx context.Context, userID uint) error {
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"account_id IN (?)",
			tx.Model(&accountModel.Account{}).Select("id").Where("user_id = ?", userID),
		).Delete(&jobModel.Job{}).Error; err != nil {
			return fmt.Errorf("failed to delete jobs: %w", err)
		}

		if err := tx.Where("user_id = ?", userID).Delete(&accountModel.Account{}).Error; err != nil {
			return fmt.Errorf("failed to delete accounts: %w", err)
		}

		result := tx.Where("id = ?", userID).Delete(&model.User{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrUserNotFound
		}
		return nil
	})

	return err
}
