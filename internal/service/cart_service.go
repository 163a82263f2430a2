package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/kranthi-07/Dab/internal/cache"
	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/repository"
)

type CartService struct {
	acct *accounts
}

func NewCartService(repo repository.UserRepository, accountCache cache.AccountCache, log *logrus.Entry) *CartService {
	return &CartService{
		acct: newAccounts(repo, accountCache, log),
	}
}

// Add puts a line in the cart. Adding a product that is already present
// increments its quantity by line.Qty rather than replacing it.
func (s *CartService) Add(ctx context.Context, userID string, line domain.CartLine) ([]domain.CartLine, error) {
	if line.ProductID == "" || line.Name == "" || line.Qty <= 0 {
		return nil, ErrInvalidInput
	}

	account, err := s.acct.mutate(ctx, userID, func(account *domain.UserAccount) error {
		for i := range account.Cart {
			if account.Cart[i].ProductID == line.ProductID {
				account.Cart[i].Qty += line.Qty
				return nil
			}
		}
		account.Cart = append(account.Cart, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account.Cart, nil
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line (removal-on-zero policy).
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, qty int) ([]domain.CartLine, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.acct.mutate(ctx, userID, func(account *domain.UserAccount) error {
		for i := range account.Cart {
			if account.Cart[i].ProductID == productID {
				if qty <= 0 {
					account.Cart = append(account.Cart[:i], account.Cart[i+1:]...)
				} else {
					account.Cart[i].Qty = qty
				}
				return nil
			}
		}
		return ErrItemNotFound
	})
	if err != nil {
		return nil, err
	}

	return account.Cart, nil
}

// Remove is idempotent: removing a product that is not in the cart succeeds
// without a write.
func (s *CartService) Remove(ctx context.Context, userID, productID string) ([]domain.CartLine, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.acct.mutate(ctx, userID, func(account *domain.UserAccount) error {
		for i := range account.Cart {
			if account.Cart[i].ProductID == productID {
				account.Cart = append(account.Cart[:i], account.Cart[i+1:]...)
				return nil
			}
		}
		return errNoChange
	})
	if err != nil {
		return nil, err
	}

	return account.Cart, nil
}

// Items returns the cart snapshot. An account with no lines, or no account
// at all, yields an empty slice rather than an error.
func (s *CartService) Items(ctx context.Context, userID string) ([]domain.CartLine, error) {
	account, err := s.acct.load(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []domain.CartLine{}, nil
		}
		return nil, err
	}

	if account.Cart == nil {
		return []domain.CartLine{}, nil
	}
	return account.Cart, nil
}
