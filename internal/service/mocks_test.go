package service

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kranthi-07/Dab/internal/cache"
	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/repository"
)

// mockRepository is an in-memory UserRepository with the same
// compare-and-swap semantics as the MongoDB implementation.
type mockRepository struct {
	m        sync.RWMutex
	accounts map[string]*domain.UserAccount
	err      error
	// conflicts forces that many ErrVersionConflict results from Update
	// before writes start succeeding again.
	conflicts int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		accounts: make(map[string]*domain.UserAccount),
	}
}

func cloneAccount(a *domain.UserAccount) *domain.UserAccount {
	c := *a
	c.Cart = append([]domain.CartLine(nil), a.Cart...)
	c.Favorites = append([]domain.FavoriteEntry(nil), a.Favorites...)
	return &c
}

func (m *mockRepository) Create(_ context.Context, account *domain.UserAccount) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.accounts {
		if existing.Mobile == account.Mobile {
			return repository.ErrDuplicateUser
		}
	}
	account.Version = 1
	m.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (m *mockRepository) FindByID(_ context.Context, id string) (*domain.UserAccount, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	account, ok := m.accounts[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return cloneAccount(account), nil
}

func (m *mockRepository) FindByMobile(_ context.Context, mobile string) (*domain.UserAccount, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, account := range m.accounts {
		if account.Mobile == mobile {
			return cloneAccount(account), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockRepository) Update(_ context.Context, account *domain.UserAccount) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.conflicts > 0 {
		m.conflicts--
		return repository.ErrVersionConflict
	}
	stored, ok := m.accounts[account.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if stored.Version != account.Version {
		return repository.ErrVersionConflict
	}
	account.Version++
	m.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (m *mockRepository) stored(id string) *domain.UserAccount {
	m.m.RLock()
	defer m.m.RUnlock()
	return cloneAccount(m.accounts[id])
}

// missCache never holds anything; every read goes to the repository.
type missCache struct{}

func (missCache) Get(context.Context, string) (*domain.UserAccount, error) {
	return nil, cache.ErrCacheMiss
}

func (missCache) Set(context.Context, string, *domain.UserAccount) error { return nil }
func (missCache) Delete(context.Context, string) error                   { return nil }

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log.WithField("test", true)
}

func seedAccount(repo *mockRepository, id string) *domain.UserAccount {
	account := &domain.UserAccount{
		ID:           id,
		Name:         "Kranthi",
		Mobile:       "9876543210",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Cart:         []domain.CartLine{},
		Favorites:    []domain.FavoriteEntry{},
	}
	_ = repo.Create(context.Background(), account)
	return account
}
