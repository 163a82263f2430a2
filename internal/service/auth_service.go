package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/kranthi-07/Dab/internal/cache"
	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/repository"
)

type AuthService struct {
	acct     *accounts
	hashCost int
}

func NewAuthService(repo repository.UserRepository, accountCache cache.AccountCache, log *logrus.Entry) *AuthService {
	return &AuthService{
		acct:     newAccounts(repo, accountCache, log),
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates an account with an empty cart and favorites list. The
// mobile number is the natural key; a collision surfaces as ErrDuplicateUser.
func (s *AuthService) Register(ctx context.Context, name, mobile, password string) (*domain.UserAccount, error) {
	if name == "" || mobile == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.UserAccount{
		ID:           uuid.NewString(),
		Name:         name,
		Mobile:       mobile,
		PasswordHash: string(hash),
		Cart:         []domain.CartLine{},
		Favorites:    []domain.FavoriteEntry{},
	}

	if err := s.acct.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *AuthService) Verify(ctx context.Context, mobile, password string) (*domain.UserAccount, error) {
	if mobile == "" || password == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.acct.repo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	return account, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.UserAccount, error) {
	return s.acct.load(ctx, userID)
}

// UpdateProfile replaces the display name when name is non-empty and
// re-hashes the credential when password is non-blank. Absent fields keep
// their stored values.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name, password string) (*domain.UserAccount, error) {
	var hash string
	if strings.TrimSpace(password) != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = string(h)
	}

	return s.acct.mutate(ctx, userID, func(account *domain.UserAccount) error {
		if name != "" {
			account.Name = name
		}
		if hash != "" {
			account.PasswordHash = hash
		}
		return nil
	})
}
