// Package accounttest provides an in-memory account.Repository for tests.
package accounttest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/cardlink/internal/domain/account"
)

// MemoryRepository stores deep copies, so a caller mutating a loaded account
// changes nothing until Save succeeds.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]stored

	// SaveErr, when set, is returned by the next Save calls.
	SaveErr error
	Saves   int
}

type stored struct {
	doc  []byte
	hash string
}

func NewMemoryRepository(accounts ...*account.Account) *MemoryRepository {
	r := &MemoryRepository{accounts: map[uuid.UUID]stored{}}
	for _, a := range accounts {
		_ = r.Create(context.Background(), a)
	}
	return r
}

func (r *MemoryRepository) put(a *account.Account) {
	doc, err := json.Marshal(a)
	if err != nil {
		panic(err)
	}
	r.accounts[a.ID] = stored{doc: doc, hash: a.PasswordHash}
}

func (r *MemoryRepository) load(s stored) *account.Account {
	a := &account.Account{}
	if err := json.Unmarshal(s.doc, a); err != nil {
		panic(err)
	}
	a.PasswordHash = s.hash
	return a
}

func (r *MemoryRepository) find(match func(*account.Account) bool) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.accounts {
		a := r.load(s)
		if match(a) {
			return a, nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (r *MemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.find(func(a *account.Account) bool { return a.ID == id && a.IsActive && !a.IsDisabled })
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.find(func(a *account.Account) bool { return strings.EqualFold(a.Email, email) })
}

func (r *MemoryRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*account.Account, error) {
	return r.find(func(a *account.Account) bool { return a.IsActive && !a.IsDisabled && a.FindProfile(profileID) != nil })
}

func (r *MemoryRepository) FindByCardID(ctx context.Context, cardID uuid.UUID) (*account.Account, error) {
	return r.find(func(a *account.Account) bool { return a.IsActive && !a.IsDisabled && a.FindCard(cardID) != nil })
}

func (r *MemoryRepository) Create(ctx context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.accounts {
		if strings.EqualFold(r.load(s).Email, a.Email) && a.Email != "" {
			return fmt.Errorf("%w: %s", account.ErrEmailExists, a.Email)
		}
	}
	a.Version = 1
	r.put(a)
	return nil
}

func (r *MemoryRepository) Save(ctx context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	s, ok := r.accounts[a.ID]
	if !ok {
		return account.ErrAccountNotFound
	}
	if r.load(s).Version != a.Version {
		return account.ErrVersionConflict
	}
	a.Version++
	r.put(a)
	r.Saves++
	return nil
}

// Get returns a copy of the stored account regardless of its flags.
func (r *MemoryRepository) Get(id uuid.UUID) *account.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.accounts[id]
	if !ok {
		return nil
	}
	return r.load(s)
}
