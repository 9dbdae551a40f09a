package card

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/internal/domain/account/accounttest"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

func TestCardUpdate(t *testing.T) {
	c := &account.Card{ID: uuid.New(), Name: "Old", IsActive: true}
	acc := &account.Account{ID: uuid.New(), IsActive: true, Cards: []*account.Card{c}}
	repo := accounttest.NewMemoryRepository(acc)
	log := logger.NewNop()
	uc := NewCardUseCase(mutation.NewExecutor(repo, nil, nil, log), log)

	updated, err := uc.Update(context.Background(), UpdateCardInput{AccountID: acc.ID, CardID: c.ID, Name: "New", IsActive: false})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.False(t, repo.Get(acc.ID).Cards[0].IsActive)

	_, err = uc.Update(context.Background(), UpdateCardInput{AccountID: acc.ID, CardID: uuid.New(), Name: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
