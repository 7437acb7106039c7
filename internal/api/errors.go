package api

import (
	"errors"
	"net/http"

	"threadline-be/internal/cart"
	"threadline-be/internal/order"
	"threadline-be/internal/product"
	"threadline-be/internal/user"
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, order.ErrUnauthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict

	case errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, product.ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, order.ErrProductNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound

	case errors.Is(err, order.ErrCartEmpty):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
