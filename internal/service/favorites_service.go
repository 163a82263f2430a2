package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/kranthi-07/Dab/internal/cache"
	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/repository"
)

type FavoritesService struct {
	acct *accounts
}

func NewFavoritesService(repo repository.UserRepository, accountCache cache.AccountCache, log *logrus.Entry) *FavoritesService {
	return &FavoritesService{
		acct: newAccounts(repo, accountCache, log),
	}
}

// Add appends an entry unless the product is already a favorite; re-adding
// is a no-op, never a duplicate.
func (s *FavoritesService) Add(ctx context.Context, userID string, entry domain.FavoriteEntry) error {
	if entry.ProductID == "" || entry.Name == "" {
		return ErrInvalidInput
	}

	_, err := s.acct.mutate(ctx, userID, func(account *domain.UserAccount) error {
		for i := range account.Favorites {
			if account.Favorites[i].ProductID == entry.ProductID {
				return errNoChange
			}
		}
		account.Favorites = append(account.Favorites, entry)
		return nil
	})
	return err
}

func (s *FavoritesService) Remove(ctx context.Context, userID, productID string) ([]domain.FavoriteEntry, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.acct.mutate(ctx, userID, func(account *domain.UserAccount) error {
		for i := range account.Favorites {
			if account.Favorites[i].ProductID == productID {
				account.Favorites = append(account.Favorites[:i], account.Favorites[i+1:]...)
				return nil
			}
		}
		return errNoChange
	})
	if err != nil {
		return nil, err
	}

	return account.Favorites, nil
}

func (s *FavoritesService) List(ctx context.Context, userID string) ([]domain.FavoriteEntry, error) {
	account, err := s.acct.load(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []domain.FavoriteEntry{}, nil
		}
		return nil, err
	}

	if account.Favorites == nil {
		return []domain.FavoriteEntry{}, nil
	}
	return account.Favorites, nil
}

// Contains reports whether the product is in the user's favorites; the
// client uses it to render the add/remove toggle.
func (s *FavoritesService) Contains(ctx context.Context, userID, productID string) (bool, error) {
	account, err := s.acct.load(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	for i := range account.Favorites {
		if account.Favorites[i].ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
