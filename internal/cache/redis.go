package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kranthi-07/Dab/internal/domain"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

type cachedAccount struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Mobile       string                 `json:"mobile"`
	PasswordHash string                 `json:"password_hash"`
	Cart         []domain.CartLine      `json:"cart"`
	Favorites    []domain.FavoriteEntry `json:"favorites"`
	Version      int64                  `json:"version"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func (r RedisCache) Get(ctx context.Context, userID string) (*domain.UserAccount, error) {
	key := cacheKey(userID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cached cachedAccount
	if err2 := json.Unmarshal(data, &cached); err2 != nil {
		return nil, fmt.Errorf("unmarshal account failed: %w", err2)
	}

	return cached.toDomain(), nil
}

func (r RedisCache) Set(ctx context.Context, userID string, account *domain.UserAccount) error {
	key := cacheKey(userID)
	data, err := json.Marshal(fromDomain(account))
	if err != nil {
		return fmt.Errorf("marshal account failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if err := r.client.Set(ctx, key, string(data), ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r RedisCache) Delete(ctx context.Context, userID string) error {
	key := cacheKey(userID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

// The domain type hides the credential hash from JSON; the cache round-trips
// through its own struct so the hash survives server-side serialization.
func fromDomain(a *domain.UserAccount) cachedAccount {
	return cachedAccount{
		ID:           a.ID,
		Name:         a.Name,
		Mobile:       a.Mobile,
		PasswordHash: a.PasswordHash,
		Cart:         a.Cart,
		Favorites:    a.Favorites,
		Version:      a.Version,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (c cachedAccount) toDomain() *domain.UserAccount {
	return &domain.UserAccount{
		ID:           c.ID,
		Name:         c.Name,
		Mobile:       c.Mobile,
		PasswordHash: c.PasswordHash,
		Cart:         c.Cart,
		Favorites:    c.Favorites,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func cacheKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
