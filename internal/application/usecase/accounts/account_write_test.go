package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cardlink/internal/application/service/servicetest"
	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/internal/domain/account/accounttest"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

func TestRegisterAccount(t *testing.T) {
	repo := accounttest.NewMemoryRepository()
	uc := NewRegisterAccountUseCase(repo, logger.NewNop())

	a, err := uc.Execute(context.Background(), RegisterAccountInput{
		Name:        "Acme",
		ContactName: "Ada",
		Phone:       "+441234567",
		Email:       " Ada@Example.com ",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", a.Email)
	assert.True(t, a.IsActive)
	assert.False(t, a.IsDisabled)
	assert.Nil(t, a.Profile)
	assert.Empty(t, a.Cards)

	stored := repo.Get(a.ID)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.Version)
	assert.True(t, auth.CheckPasswordHash("s3cret-pass", stored.PasswordHash))

	_, err = uc.Execute(context.Background(), RegisterAccountInput{Name: "Other", Email: "ADA@example.com", Password: "another-pass"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.ErrorIs(t, err, account.ErrEmailExists)
}

func TestUpdateAccount(t *testing.T) {
	hash, err := auth.HashPassword("old-pass")
	require.NoError(t, err)
	acc := &account.Account{ID: uuid.New(), Name: "Acme", Email: "owner@example.com", PasswordHash: hash, IsActive: true}
	repo := accounttest.NewMemoryRepository(acc)
	publisher := servicetest.NewPublisher()
	log := logger.NewNop()
	uc := NewUpdateAccountUseCase(mutation.NewExecutor(repo, servicetest.NewCache(), publisher, log), log)

	updated, err := uc.Execute(context.Background(), UpdateAccountInput{AccountID: acc.ID, Name: "Acme Ltd", ContactName: "Ada", Phone: "+44", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", updated.Name)
	assert.True(t, auth.CheckPasswordHash("old-pass", repo.Get(acc.ID).PasswordHash))

	events := publisher.Wait(1, time.Second)
	require.Len(t, events, 1)
	assert.Equal(t, account.EventAccountUpdated, events[0].Type)

	newPass := "new-pass"
	_, err = uc.Execute(context.Background(), UpdateAccountInput{AccountID: acc.ID, Name: "Acme Ltd", Password: &newPass})
	require.NoError(t, err)

	stored := repo.Get(acc.ID)
	assert.True(t, auth.CheckPasswordHash("new-pass", stored.PasswordHash))
	assert.False(t, stored.IsActive)
	assert.Equal(t, "owner@example.com", stored.Email)

	_, err = uc.Execute(context.Background(), UpdateAccountInput{AccountID: acc.ID, Name: "again"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
