package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"freelance-job-tracker/internal/account/model"
	"freelance-job-tracker/internal/database"
	jobModel "freelance-job-tracker/internal/job/model"
	appErrors "freelance-job-tracker/pkg/errors"
)

type AccountRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *AccountRepository) ListByUser(ctx context.Context, userID uint) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

// GetByID fails with the same error whether the account is absent or owned
// by a different user.
func (r *AccountRepository) GetByID(ctx context.Context, accountID, userID uint) (*model.Account, error) {
	var account model.Account
	err := r.db.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account *model.Account) error {
	account.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND user_id = ?", account.ID, account.UserID).
		Updates(map[string]interface{}{
			"name":       account.Name,
			"email":      account.Email,
			"updated_at": account.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAccountNotFound
	}
	return nil
}

// DeleteAccount removes the account and all its jobs in one transaction.
func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID, userID uint) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account model.Account
		err := tx.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrAccountNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		if err := tx.Where("account_id = ?", accountID).Delete(&jobModel.Job{}).Error; err != nil {
			return fmt.Errorf("failed to delete jobs: %w", err)
		}

		if err := tx.Delete(&account).Error; err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		return nil
	})
}
