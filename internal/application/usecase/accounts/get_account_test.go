package accounts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/internal/domain/account/accounttest"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

func TestGetAccount(t *testing.T) {
	one, two := 1, 2
	p := account.NewProfile("Ada", "", "", "", "")
	p.Links = []*account.ProfileLink{
		{ID: uuid.New(), Name: "second", OrderNumber: &two},
		{ID: uuid.New(), Name: "first", OrderNumber: &one},
	}
	acc := &account.Account{ID: uuid.New(), IsActive: true, Profile: p}
	inactive := &account.Account{ID: uuid.New()}
	uc := NewGetAccountUseCase(accounttest.NewMemoryRepository(acc, inactive), logger.NewNop())

	got, err := uc.Execute(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Profile.Links[0].Name)

	_, err = uc.Execute(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
