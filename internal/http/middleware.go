package http

import (
	"context"
	"net/http"

	"github.com/kranthi-07/Dab/internal/session"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "sid"

type contextKey string

const identityKey contextKey = "identity"

// SessionMiddleware resolves the session cookie to an Identity before any
// protected handler runs. Resolution failure short-circuits with 401; the
// repository is never touched for an unauthenticated request.
func SessionMiddleware(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
				return
			}

			userID, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				// Fail closed on any resolution error, expired and
				// tampered tokens included.
				respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, session.Identity{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFromContext(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(session.Identity)
	return identity, ok
}
