package api

import (
	"encoding/json"
	"net/http"

	"threadline-be/internal/product"
	"threadline-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productSvc product.Service
}

func NewProductHandler(productSvc product.Service) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

func (h *ProductHandler) RegisterStaffRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/batch", h.createBatch)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.List(r.Context())
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.productSvc.Get(r.Context(), id)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var params product.CreateProductParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	p, err := h.productSvc.Create(r.Context(), params)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) createBatch(w http.ResponseWriter, r *http.Request) {
	var batch []product.CreateProductParams
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&batch); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request payload: expected a JSON array")
		return
	}

	created, err := h.productSvc.CreateBatch(r.Context(), batch)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"count":    len(created),
		"products": created,
	})
}
