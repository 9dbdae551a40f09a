package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/internal/domain/account/accounttest"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	active := &account.Account{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash, IsActive: true}
	disabled := &account.Account{ID: uuid.New(), Email: "gone@example.com", PasswordHash: hash, IsActive: true, IsDisabled: true}
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	uc := NewLoginUseCase(accounttest.NewMemoryRepository(active, disabled), jwtSvc, logger.NewNop())

	out, err := uc.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, active.ID, claims.AccountID)
	refreshClaims, err := jwtSvc.ValidateRefreshToken(out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, active.ID, refreshClaims.AccountID)

	_, err = uc.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = uc.Execute(context.Background(), LoginInput{Email: "gone@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperror.ErrPermission)
}
