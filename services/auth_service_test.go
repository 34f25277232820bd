package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/repository"
	"github.com/teklifgo/server/repository/testutil"
	"github.com/teklifgo/server/services"
)

func newAuthService(t *testing.T) services.AuthService {
	t.Helper()

	db := testutil.NewTestDB(t)
	userRepo := repository.NewSQLUserRepo(db.Conn)
	return services.NewAuthService(userRepo, "test-secret", 7)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "Yeni@Example.com",
		Password: "secret123",
		FullName: "Yeni Kullanıcı",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, "bearer", result.TokenType)
	// Email normalize edilir
	require.Equal(t, "yeni@example.com", result.User.Email)
	require.Equal(t, models.PlanFree, result.User.SubscriptionPlan)
	require.Equal(t, models.DefaultTaxRate, result.User.DefaultTaxRate)

	// Token geçerli ve doğru kullanıcıya ait
	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, claims.UserID)

	// Aynı şifreyle login olunabilir
	login, err := svc.Login(ctx, &models.LoginRequest{
		Email:    "yeni@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, result.User.ID, login.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	req := &models.RegisterRequest{
		Email:    "dup@example.com",
		Password: "secret123",
		FullName: "İlk Kayıt",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.RegisterRequest{
		Email:    "dup@example.com",
		Password: "different",
		FullName: "İkinci Kayıt",
	})
	require.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestAuthService_Register_Invalid(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Email: "not-an-email", Password: "secret123", FullName: "Ad",
	})
	require.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = svc.Register(ctx, &models.RegisterRequest{
		Email: "ok@example.com", Password: "12345", FullName: "Ad",
	})
	require.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
		FullName: "Kullanıcı",
	})
	require.NoError(t, err)

	// Yanlış şifre ile bilinmeyen email aynı hatayı verir —
	// kayıtlı email'ler dışarıdan enumerate edilemez.
	_, wrongPass := svc.Login(ctx, &models.LoginRequest{
		Email: "user@example.com", Password: "wrong",
	})
	_, unknownEmail := svc.Login(ctx, &models.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})

	require.ErrorIs(t, wrongPass, pkg.ErrUnauthorized)
	require.ErrorIs(t, unknownEmail, pkg.ErrUnauthorized)
	require.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestAuthService_ValidateAccessToken_Invalid(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.ValidateAccessToken("not-a-jwt")
	require.ErrorIs(t, err, pkg.ErrUnauthorized)

	// Başka secret ile imzalanmış token reddedilir
	other := newAuthService(t)
	result, regErr := other.Register(context.Background(), &models.RegisterRequest{
		Email: "other@example.com", Password: "secret123", FullName: "Diğer",
	})
	require.NoError(t, regErr)

	otherSigned := services.NewAuthService(nil, "different-secret", 7)
	_, err = otherSigned.ValidateAccessToken(result.AccessToken)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}
