package cache

import (
	"context"
	"errors"

	"github.com/kranthi-07/Dab/internal/domain"
)

type AccountCache interface {
	Get(ctx context.Context, userID string) (*domain.UserAccount, error)
	Set(ctx context.Context, userID string, account *domain.UserAccount) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
