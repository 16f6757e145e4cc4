package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"freelance-job-tracker/internal/config"
	"freelance-job-tracker/internal/logger"
	"freelance-job-tracker/internal/mailer"
	"freelance-job-tracker/internal/user/model"
	"freelance-job-tracker/internal/user/repository"
	"freelance-job-tracker/internal/user/validator"
	appErrors "freelance-job-tracker/pkg/errors"
	"freelance-job-tracker/pkg/utils"
)

const resetTokenTTL = 1 * time.Hour

type UserService struct {
	repo   *repository.UserRepository
	mailer mailer.Mailer
	config *config.Config
}

func NewService(repo *repository.UserRepository, m mailer.Mailer, cfg *config.Config) *UserService {
	return &UserService{
		repo:   repo,
		mailer: m,
		config: cfg,
	}
}

func (s *UserService) Register(ctx context.Context, request *model.RegisterRequest) (*model.UserResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	existing, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil && !errors.Is(err, appErrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, appErrors.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// Login distinguishes unknown email from a wrong password internally so the
// failures can be told apart in logs; the handler collapses both into a
// uniform 401.
func (s *UserService) Login(ctx context.Context, request *model.LoginRequest) (*model.AuthResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			logger.Warn("Login attempt with unknown email", zap.String("email", request.Email))
			return nil, appErrors.ErrInvalidEmail
		}
		return nil, err
	}

	if !utils.CheckPassword(user.Password, request.Password) {
		logger.Warn("Login attempt with wrong password", zap.Uint("user_id", user.ID))
		return nil, appErrors.ErrIncorrectPassword
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}, nil
}

// ForgotPassword issues a fresh reset token valid for one hour, overwriting
// any prior token, and hands it to the mailer collaborator. An unknown email
// surfaces as ErrUserNotFound.
func (s *UserService) ForgotPassword(ctx context.Context, request *model.ForgotPasswordRequest) error {
	if err := validator.ValidateStruct(request); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	expires := time.Now().Add(resetTokenTTL)

	if err := s.repo.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("failed to deliver reset token: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token: the matched user's password is
// rewritten and both reset fields are cleared in the same update, so a token
// is accepted at most once and never after its expiry.
func (s *UserService) ResetPassword(ctx context.Context, request *model.ResetPasswordRequest) error {
	if err := validator.ValidateStruct(request); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.repo.GetUserByResetToken(ctx, request.Token)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, user.ID, hashedPassword)
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*model.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, request *model.UpdateProfileRequest) (*model.UserResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Password != nil {
		hashed, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// DeleteAccount removes the user and cascades to all owned accounts and
// their jobs.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.repo.DeleteUser(ctx, userID)
}
