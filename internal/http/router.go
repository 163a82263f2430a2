package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kranthi-07/Dab/internal/session"
)

// NewRouter assembles the canonical route table: one set of routes, session
// auth enforced by middleware on everything under the protected group.
func NewRouter(auth *AuthHandler, cart *CartHandler, favorites *FavoritesHandler, sessions session.Store, requestTimeout time.Duration, maxBodySize int64) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.RequestSize(maxBodySize))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", auth.Signup)
			r.Post("/signin", auth.Signin)

			r.Group(func(r chi.Router) {
				r.Use(SessionMiddleware(sessions))
				r.Get("/profile", auth.Profile)
				r.Put("/profile/update", auth.UpdateProfile)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(sessions))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cart.GetCart)
				r.Post("/", cart.AddItem)
				r.Put("/", cart.UpdateQuantity)
				r.Delete("/", cart.RemoveItem)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", favorites.List)
				r.Post("/", favorites.Add)
				r.Delete("/", favorites.Remove)
				r.Get("/{productID}", favorites.Contains)
			})
		})
	})

	// Logout stays outside the auth guard: destroying a dead session is a
	// no-op success, not a 401.
	r.Get("/logout", auth.Logout)

	return r
}
