package http

import (
	"encoding/json"
	"net/http"

	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/service"
)

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addCartItemRequestDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Desc      string  `json:"desc"`
}

type updateQuantityRequestDTO struct {
	ProductID string `json:"productId"`
	// Pointer so an absent qty is distinguishable from an explicit zero;
	// zero removes the line.
	Qty *int `json:"qty"`
}

type removeItemRequestDTO struct {
	ProductID string `json:"productId"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	items, err := h.cart.Items(r.Context(), identity.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.CartLine{"items": items})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	var req addCartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	cart, err := h.cart.Add(r.Context(), identity.UserID, domain.CartLine{
		ProductID: req.ProductID,
		Name:      req.Name,
		Qty:       req.Qty,
		Price:     req.Price,
		Image:     req.Image,
		Desc:      req.Desc,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cart":    cart,
	})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	var req updateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" || req.Qty == nil {
		respondError(w, http.StatusBadRequest, "invalid_input", "productId and qty are required")
		return
	}

	cart, err := h.cart.SetQuantity(r.Context(), identity.UserID, req.ProductID, *req.Qty)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cart":    cart,
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	var req removeItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_input", "Product ID required")
		return
	}

	cart, err := h.cart.Remove(r.Context(), identity.UserID, req.ProductID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Item removed from cart",
		"cart":    cart,
	})
}
