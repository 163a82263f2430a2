package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned for any token that does not resolve: missing,
// expired, destroyed, or tampered. Resolution fails closed.
var ErrNoSession = errors.New("no active session")

// Identity is the resolved authentication context for one request. It is
// produced by the session middleware and passed explicitly into service
// calls, never carried implicitly on the request.
type Identity struct {
	UserID string
}

type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
}
