package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-job-tracker/internal/config"
	"freelance-job-tracker/internal/database"
	"freelance-job-tracker/internal/logger"
	"freelance-job-tracker/internal/user/model"
	"freelance-job-tracker/internal/user/repository"
	appErrors "freelance-job-tracker/pkg/errors"
	"freelance-job-tracker/pkg/utils"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// capturingMailer records issued reset tokens instead of delivering them.
type capturingMailer struct {
	tokens map[string]string
}

func (m *capturingMailer) SendPasswordReset(_ context.Context, email, token string) error {
	if m.tokens == nil {
		m.tokens = map[string]string{}
	}
	m.tokens[email] = token
	return nil
}

func newTestService(t *testing.T) (*UserService, *repository.UserRepository, *capturingMailer) {
	t.Helper()

	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewRepository(db)
	m := &capturingMailer{}
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
	return NewService(repo, m, cfg), repo, m
}

func register(t *testing.T, svc *UserService, name, email, password string) *model.UserResponse {
	t.Helper()

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	svc, repo, _ := newTestService(t)

	user := register(t, svc, "Alice", "alice@x.com", "secret1")
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.NotZero(t, user.ID)

	// The stored hash must verify and never equal the raw password.
	stored, err := repo.GetUserByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "secret1"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	register(t, svc, "Alice", "alice@x.com", "secret1")

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Other",
		Email:    "alice@x.com",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, appErrors.ErrEmailTaken)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	register(t, svc, "Alice", "alice@x.com", "secret1")

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "nobody@x.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "alice@x.com",
			Password: "wrong1",
		})
		assert.ErrorIs(t, err, appErrors.ErrIncorrectPassword)
	})

	t.Run("success", func(t *testing.T) {
		auth, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "alice@x.com",
			Password: "secret1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, auth.Token)
		assert.Equal(t, "alice@x.com", auth.User.Email)

		claims, err := utils.ValidateToken(auth.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, auth.User.ID, claims.UserID)
	})
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
		Email: "nobody@x.com",
	})
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestResetPasswordFlow(t *testing.T) {
	svc, _, m := newTestService(t)
	register(t, svc, "Alice", "alice@x.com", "secret1")

	require.NoError(t, svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
		Email: "alice@x.com",
	}))
	token := m.tokens["alice@x.com"]
	require.NotEmpty(t, token)

	require.NoError(t, svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
		Token:       token,
		NewPassword: "newpass1",
	}))

	// Old password no longer works, new one does.
	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "alice@x.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, appErrors.ErrIncorrectPassword)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "alice@x.com",
		Password: "newpass1",
	})
	assert.NoError(t, err)
}

func TestResetPassword_TokenSingleUse(t *testing.T) {
	svc, _, m := newTestService(t)
	register(t, svc, "Alice", "alice@x.com", "secret1")

	require.NoError(t, svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
		Email: "alice@x.com",
	}))
	token := m.tokens["alice@x.com"]

	require.NoError(t, svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
		Token:       token,
		NewPassword: "newpass1",
	}))

	// Replaying the same token must fail.
	err := svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
		Token:       token,
		NewPassword: "another1",
	})
	assert.ErrorIs(t, err, appErrors.ErrResetTokenInvalid)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	svc, repo, m := newTestService(t)
	user := register(t, svc, "Alice", "alice@x.com", "secret1")

	require.NoError(t, svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
		Email: "alice@x.com",
	}))
	token := m.tokens["alice@x.com"]

	// Backdate the expiry past the one-hour window.
	require.NoError(t, repo.SetResetToken(context.Background(), user.ID, token, time.Now().Add(-time.Minute)))

	err := svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
		Token:       token,
		NewPassword: "newpass1",
	})
	assert.ErrorIs(t, err, appErrors.ErrResetTokenInvalid)
}

func TestForgotPassword_OverwritesPriorToken(t *testing.T) {
	svc, _, m := newTestService(t)
	register(t, svc, "Alice", "alice@x.com", "secret1")

	require.NoError(t, svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
		Email: "alice@x.com",
	}))
	first := m.tokens["alice@x.com"]

	require.NoError(t, svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
		Email: "alice@x.com",
	}))
	second := m.tokens["alice@x.com"]
	require.NotEqual(t, first, second)

	// The replaced token is no longer valid.
	err := svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
		Token:       first,
		NewPassword: "newpass1",
	})
	assert.ErrorIs(t, err, appErrors.ErrResetTokenInvalid)

	require.NoError(t, svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
		Token:       second,
		NewPassword: "newpass1",
	}))
}

func TestUpdateProfile_PartialPatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	user := register(t, svc, "Alice", "alice@x.com", "secret1")

	name := "Alice Cooper"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &model.UpdateProfileRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "alice@x.com", updated.Email)

	// Password untouched by a name-only patch.
	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "alice@x.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
}
