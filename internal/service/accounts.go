package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/kranthi-07/Dab/internal/cache"
	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/repository"
)

// maxSaveAttempts bounds the retry loop around a version-conflicted save.
const maxSaveAttempts = 3

// accounts is the shared load/mutate machinery for the user aggregate. Reads
// go through the cache; writes reload, apply, and compare-and-swap on the
// document version, retrying a bounded number of times before giving up.
type accounts struct {
	repo  repository.UserRepository
	cache cache.AccountCache
	log   *logrus.Entry
	sfg   singleflight.Group // Prevents cache stampede
}

func newAccounts(repo repository.UserRepository, accountCache cache.AccountCache, log *logrus.Entry) *accounts {
	return &accounts{
		repo:  repo,
		cache: accountCache,
		log:   log,
	}
}

func (a *accounts) load(ctx context.Context, userID string) (*domain.UserAccount, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := a.sfg.Do(userID, func() (interface{}, error) {
		account, err := a.cache.Get(ctx, userID)
		if err == nil {
			return account, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			a.log.WithError(err).Warn("account cache get failed")
		}

		account, err = a.repo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		// Fill synchronously inside the singleflight so a mutation that
		// invalidates right after cannot lose to a late async fill.
		if errSet := a.cache.Set(ctx, userID, account); errSet != nil {
			a.log.WithError(errSet).Warn("account cache set failed")
		}

		return account, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.UserAccount), nil
}

// mutate applies fn to a freshly loaded aggregate and saves it. The cache is
// bypassed on the read so the compare-and-swap starts from the stored
// version. fn may return errNoChange to skip the write.
func (a *accounts) mutate(ctx context.Context, userID string, fn func(*domain.UserAccount) error) (*domain.UserAccount, error) {
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		account, err := a.repo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		if err := fn(account); err != nil {
			if errors.Is(err, errNoChange) {
				return account, nil
			}
			return nil, err
		}

		err = a.repo.Update(ctx, account)
		if errors.Is(err, repository.ErrVersionConflict) {
			a.log.WithField("user_id", userID).Debug("version conflict, retrying save")
			continue
		}
		if err != nil {
			return nil, err
		}

		a.invalidate(userID)
		return account, nil
	}

	return nil, repository.ErrVersionConflict
}

func (a *accounts) invalidate(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := a.cache.Delete(ctx, userID); err != nil {
		a.log.WithError(err).Warn("account cache invalidate failed")
	}
}
