package handlers

import (
	"net/http"

	"github.com/programmer-tapa/order-service/internal/service"
)

// HTTPStatus maps an envelope status to its protocol status code.
func HTTPStatus(status service.Status) int {
	switch status {
	case service.StatusSuccess:
		return http.StatusOK
	case service.StatusUnauthorized:
		return http.StatusForbidden
	case service.StatusNotFound:
		return http.StatusNotFound
	case service.StatusValidationError:
		return http.StatusBadRequest
	case service.StatusConflict:
		return http.StatusConflict
	case service.StatusInternalError:
		return http.StatusInternalServerError
	case service.StatusFailure:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
