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

func TestRefreshToken(t *testing.T) {
	active := &account.Account{ID: uuid.New(), Email: "owner@example.com", IsActive: true}
	disabled := &account.Account{ID: uuid.New(), Email: "gone@example.com", IsActive: true, IsDisabled: true}
	jwtSvc := auth.NewJWTService("test-secret", time.Hour).WithRefreshSecret("refresh-secret", 0)
	uc := NewRefreshTokenUseCase(accounttest.NewMemoryRepository(active, disabled), jwtSvc, logger.NewNop())

	refresh, err := jwtSvc.GenerateRefreshToken(active.ID)
	require.NoError(t, err)
	out, err := uc.Execute(context.Background(), refresh)
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, active.ID, claims.AccountID)

	access, err := jwtSvc.GenerateToken(active.ID)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), access)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = uc.Execute(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	for _, id := range []uuid.UUID{disabled.ID, uuid.New()} {
		orphan, err := jwtSvc.GenerateRefreshToken(id)
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), orphan)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
		assert.ErrorIs(t, err, account.ErrAccountNotFound)
	}
}
