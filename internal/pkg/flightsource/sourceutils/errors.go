package sourceutils

import (
	"net/http"

	"github.com/tripvera/travel-search-service/internal/pkg/exception"
)

var ErrSourceUnavailable = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "source internal error or temporarily unavailable",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "source rate limit exceeded",
}

var ErrManualSearchRequired = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "source deferred to manual search",
}
