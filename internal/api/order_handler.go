package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"threadline-be/internal/order"
	"threadline-be/internal/user"
	"threadline-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderSvc order.Service
}

func NewOrderHandler(orderSvc order.Service) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/checkout", h.checkout)
	r.Get("/orders/my", h.myOrders)
	r.Get("/orders/{id}", h.orderDetail)
}

func (h *OrderHandler) RegisterStaffRoutes(r chi.Router) {
	r.Get("/orders", h.allOrders)
	r.Post("/orders/{id}/status", h.updateStatus)
}

type checkoutResponse struct {
	OrderID uint         `json:"order_id"`
	Total   float64      `json:"total"`
	Status  order.Status `json:"status"`
}

func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		RespondWithError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	o, err := h.orderSvc.Checkout(r.Context(), userID)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusCreated, checkoutResponse{
		OrderID: o.ID,
		Total:   o.Total,
		Status:  o.Status,
	})
}

func (h *OrderHandler) myOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		RespondWithError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	orders, err := h.orderSvc.MyOrders(r.Context(), userID)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *OrderHandler) orderDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		RespondWithError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	orderID, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	role := utils.GetUserRoleFromContext(r.Context())
	isStaff := role == string(user.RoleVendor) || role == string(user.RoleAdmin)

	o, err := h.orderSvc.GetOrderDetail(r.Context(), userID, orderID, isStaff)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) allOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.AllOrders(r.Context())
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	status := order.Status(strings.ToUpper(req.Status))
	if err := h.orderSvc.UpdateStatus(r.Context(), orderID, status); err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"id":     orderID,
		"status": status,
	})
}
