package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/services/auth"
	"github.com/bangtable/bangtable/internal/storage/gamelock"
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
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNameTooShort       = "NAME_TOO_SHORT"
	CodeNameTaken          = "NAME_TAKEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeGameStarted        = "GAME_STARTED"
	CodeGameFull           = "GAME_FULL"
	CodePlayerCount        = "PLAYER_COUNT"
	CodeNotAdmin           = "NOT_ADMIN"
	CodeForbidden          = "FORBIDDEN"
	CodeNotInGame          = "NOT_IN_GAME"
	CodeRequestNotFound    = "REQUEST_NOT_FOUND"
	CodeMemberNotFound     = "MEMBER_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeCardNotFound       = "CARD_NOT_FOUND"
	CodeInvalidZone        = "INVALID_ZONE"
	CodeInvalidIndex       = "INVALID_INDEX"
	CodeGameBusy           = "GAME_BUSY"
	CodeInternalError      = "INTERNAL_ERROR"
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
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrNameTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodeNameTooShort, "Name is too short"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "Name already taken"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameStarted, "Game has already started"}}
	case errors.Is(err, model.ErrGameFull):
		return &httpError{http.StatusConflict, APIError{CodeGameFull, "Game is full"}}
	case errors.Is(err, model.ErrPlayerCount):
		return &httpError{http.StatusConflict, APIError{CodePlayerCount, "Player count out of range"}}
	case errors.Is(err, model.ErrNotAdmin):
		return &httpError{http.StatusForbidden, APIError{CodeNotAdmin, "Only the admin can perform this action"}}
	case errors.Is(err, model.ErrForbidden):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Not allowed"}}
	case errors.Is(err, model.ErrNotInGame):
		return &httpError{http.StatusForbidden, APIError{CodeNotInGame, "Not a player in this game"}}
	case errors.Is(err, model.ErrRequestNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRequestNotFound, "Join request not found"}}
	case errors.Is(err, model.ErrMemberNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMemberNotFound, "Member not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrCardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCardNotFound, "Card not found in zone"}}
	case errors.Is(err, model.ErrInvalidZone):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidZone, "Unknown card zone"}}
	case errors.Is(err, model.ErrInvalidIndex):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidIndex, "Target index out of range"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid name or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	// Contention on a single game
	case errors.Is(err, gamelock.ErrLockTimeout):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeGameBusy, "Game is busy, try again"}}

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
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
