package service

import (
	"context"

	"freelance-job-tracker/internal/account/model"
	"freelance-job-tracker/internal/account/repository"
	"freelance-job-tracker/internal/account/validator"
	appErrors "freelance-job-tracker/pkg/errors"
)

type AccountService struct {
	repo *repository.AccountRepository
}

func NewService(repo *repository.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) Create(ctx context.Context, userID uint, request *model.CreateAccountRequest) (*model.Account, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	account := &model.Account{
		Name:   request.Name,
		Email:  request.Email,
		UserID: userID,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *AccountService) List(ctx context.Context, userID uint) ([]model.Account, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *AccountService) Get(ctx context.Context, accountID, userID uint) (*model.Account, error) {
	return s.repo.GetByID(ctx, accountID, userID)
}

// Update applies a partial patch after re-resolving ownership; nil fields
// are left untouched.
func (s *AccountService) Update(ctx context.Context, accountID, userID uint, request *model.UpdateAccountRequest) (*model.Account, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	account, err := s.repo.GetByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		account.Name = *request.Name
	}
	if request.Email != nil {
		account.Email = *request.Email
	}

	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, accountID, userID uint) error {
	return s.repo.DeleteAccount(ctx, accountID, userID)
}
