package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpfeif/caddiebook/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeNotOwner             = "NOT_OWNER"
	CodeProfileNotFound      = "PROFILE_NOT_FOUND"
	CodeEventNotFound        = "EVENT_NOT_FOUND"
	CodeGolferNotFound       = "GOLFER_NOT_FOUND"
	CodeGameNotFound         = "GAME_NOT_FOUND"
	CodeSettlementNotFound   = "SETTLEMENT_NOT_FOUND"
	CodeEventCompleted       = "EVENT_COMPLETED"
	CodeEventNotCompleted    = "EVENT_NOT_COMPLETED"
	CodeDuplicateGolfer      = "DUPLICATE_GOLFER"
	CodeInvalidGolfer        = "INVALID_GOLFER"
	CodeInvalidHole          = "INVALID_HOLE"
	CodeInvalidStrokes       = "INVALID_STROKES"
	CodeInvalidPaidMethod    = "INVALID_PAID_METHOD"
	CodeSettlementNotPending = "SETTLEMENT_NOT_PENDING"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrEventNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeEventNotFound, "Event not found"}}
	case errors.Is(err, model.ErrGolferNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGolferNotFound, "Golfer not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrSettlementNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSettlementNotFound, "Settlement not found"}}
	case errors.Is(err, model.ErrEventCompleted):
		return &httpError{http.StatusConflict, APIError{CodeEventCompleted, "Event is already completed"}}
	case errors.Is(err, model.ErrEventNotCompleted):
		return &httpError{http.StatusConflict, APIError{CodeEventNotCompleted, "Event is not completed"}}
	case errors.Is(err, model.ErrNotOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotOwner, "Only the event owner can perform this action"}}
	case errors.Is(err, model.ErrDuplicateGolfer):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateGolfer, "Golfer already in event or team"}}
	case errors.Is(err, model.ErrInvalidGolfer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGolfer, "Golfer needs a profile or a name"}}
	case errors.Is(err, model.ErrInvalidHole):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidHole, "Hole number out of range"}}
	case errors.Is(err, model.ErrInvalidStrokes):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStrokes, "Strokes must be at least 1"}}
	case errors.Is(err, model.ErrInvalidPaidMethod):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPaidMethod, "Unknown payment method"}}
	case errors.Is(err, model.ErrSettlementNotPending):
		return &httpError{http.StatusConflict, APIError{CodeSettlementNotPending, "Settlement is no longer pending"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Profile identification required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
