package api

import (
	"encoding/json"
	"net/http"

	"threadline-be/internal/cart"
	"threadline-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartSvc cart.Service
}

func NewCartHandler(cartSvc cart.Service) *CartHandler {
	return &CartHandler{cartSvc: cartSvc}
}

func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.view)
	r.Post("/items", h.addItem)
	r.Delete("/items/{id}", h.removeItem)
}

type addItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		RespondWithError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	line, err := h.cartSvc.AddItem(r.Context(), cart.AddItemParams{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusCreated, line)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		RespondWithError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	productID, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.cartSvc.RemoveItem(r.Context(), userID, productID); err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) view(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		RespondWithError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	c, err := h.cartSvc.ViewCart(r.Context(), userID)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, c)
}
