package service

import (
	"net/http"

	"github.com/tripvera/travel-search-service/internal/pkg/exception"
)

var ErrNoFlightsFound = exception.ApplicationError{
	Message:    "no flights found",
	StatusCode: http.StatusNotFound,
}
