package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/service"
)

type FavoritesHandler struct {
	favorites *service.FavoritesService
}

func NewFavoritesHandler(favorites *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

type addFavoriteRequestDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Desc      string  `json:"desc"`
}

type removeFavoriteRequestDTO struct {
	ProductID string `json:"productId"`
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	items, err := h.favorites.List(r.Context(), identity.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.FavoriteEntry{"items": items})
}

func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	var req addFavoriteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := h.favorites.Add(r.Context(), identity.UserID, domain.FavoriteEntry{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Desc:      req.Desc,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	var req removeFavoriteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_input", "Product ID required")
		return
	}

	favorites, err := h.favorites.Remove(r.Context(), identity.UserID, req.ProductID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Item removed from favorites",
		"favorites": favorites,
	})
}

// Contains reports the favorite toggle state for a single product.
func (h *FavoritesHandler) Contains(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	productID := chi.URLParam(r, "productID")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_input", "Product ID required")
		return
	}

	favorite, err := h.favorites.Contains(r.Context(), identity.UserID, productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}
