package dto

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error   string `json:"error"`             // Stable reason, e.g. INSUFFICIENT
	Code    int    `json:"code"`              // Numeric error code
	Message string `json:"message,omitempty"` // Details, operator endpoints only
}

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, errs.ErrCodeGenerationExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrGenerationFailed):
		return http.StatusBadGateway
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidRequest),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrNegativeCredits),
		errors.Is(err, errs.ErrInvalidUserID),
		errors.Is(err, errs.ErrInvalidReferralCode),
		errors.Is(err, errs.ErrSelfReferral),
		errors.Is(err, errs.ErrAlreadyReferred),
		errors.Is(err, errs.ErrInvalidSignature),
		errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for err. Details are only included when requested.
func NewErrorResponse(err error, withDetails bool) ErrorResponse {
	resp := ErrorResponse{
		Error: errs.Reason(err),
		Code:  errs.ErrorCode(err),
	}
	if withDetails {
		resp.Message = err.Error()
	}
	return resp
}
