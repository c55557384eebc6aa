package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeUnauthorized         = 4010
	CodeInsufficientCredits  = 4020
	CodeForbidden            = 4030
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeInvalidReferralCode  = 4004
	CodeSelfReferral         = 4005
	CodeAlreadyReferred      = 4006
	CodeConstraintViolation  = 4007
	CodeInvalidSignature     = 4008
	CodeAccountNotFound      = 4040
	CodeReferralNotFound     = 4041
	CodePurchaseNotFound     = 4042
	CodeRateLimited          = 4290
	CodeGenerationFailed     = 5020
	CodeCodeGenerationFailed = 5030

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Stable reason strings returned to API callers next to the numeric code
const (
	ReasonInvalidRequest          = "INVALID_REQUEST"
	ReasonUnauthorized            = "UNAUTHORIZED"
	ReasonForbidden               = "FORBIDDEN"
	ReasonInsufficient            = "INSUFFICIENT"
	ReasonInvalidAmount           = "INVALID_AMOUNT"
	ReasonInvalidUserID           = "INVALID_USER_ID"
	ReasonInvalidCode             = "INVALID_CODE"
	ReasonSelfReferral            = "SELF_REFERRAL"
	ReasonAlreadyReferred         = "ALREADY_REFERRED"
	ReasonCodeGenerationExhausted = "CODE_GENERATION_EXHAUSTED"
	ReasonInvalidSignature        = "INVALID_SIGNATURE"
	ReasonNotFound                = "NOT_FOUND"
	ReasonRateLimited             = "RATE_LIMITED"
	ReasonGenerationFailed        = "GENERATION_FAILED"
	ReasonInternal                = "INTERNAL"
)

// Base error types
var (
	// ErrInsufficientCredits is returned when an account has no credit left to consume
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when a credit amount is zero, negative or out of range
	ErrInvalidAmount = errors.New("invalid credit amount")

	// ErrInvalidUserID is returned when the user identifier is empty or malformed
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrNegativeCredits is returned when an operation would leave a negative balance
	ErrNegativeCredits = errors.New("credits cannot be negative")

	// ErrInvalidReferralCode is returned when a referral code is malformed or unknown
	ErrInvalidReferralCode = errors.New("invalid referral code")

	// ErrSelfReferral is returned when a user tries to redeem their own code
	ErrSelfReferral = errors.New("self referral is not allowed")

	// ErrAlreadyReferred is returned when a user was already referred by another account
	ErrAlreadyReferred = errors.New("user was already referred")

	// ErrReferralCodeTaken is returned when a generated code is already assigned
	ErrReferralCodeTaken = errors.New("referral code already taken")

	// ErrCodeGenerationExhausted is returned when every code generation attempt collided
	ErrCodeGenerationExhausted = errors.New("referral code generation attempts exhausted")

	// ErrInvalidSignature is returned when a payment event fails signature verification
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrMissingClientReference is returned when a checkout session carries no user reference
	ErrMissingClientReference = errors.New("checkout session has no client reference")

	// ErrMissingCreditMetadata is returned when no purchased product declares a credits value
	ErrMissingCreditMetadata = errors.New("purchased product has no credits metadata")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrReferralNotFound is returned when the requested referral doesn't exist
	ErrReferralNotFound = errors.New("referral not found")

	// ErrPurchaseNotFound is returned when the requested purchase record doesn't exist
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrUnauthorized is returned when an identity token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when a valid caller lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited is returned when a caller exceeded its request window
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrGenerationFailed is returned when the message generator call fails
	ErrGenerationFailed = errors.New("message generation failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrConcurrentModification is returned when a conditional update kept losing races
	ErrConcurrentModification = errors.New("concurrent modification, retries exhausted")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateRecord is returned when a unique constraint rejects a write
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeCredits):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidReferralCode):
		return CodeInvalidReferralCode
	case errors.Is(err, ErrSelfReferral):
		return CodeSelfReferral
	case errors.Is(err, ErrAlreadyReferred):
		return CodeAlreadyReferred
	case errors.Is(err, ErrCodeGenerationExhausted):
		return CodeCodeGenerationFailed
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrReferralNotFound):
		return CodeReferralNotFound
	case errors.Is(err, ErrPurchaseNotFound):
		return CodePurchaseNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrGenerationFailed):
		return CodeGenerationFailed
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// Reason returns the stable reason string for known errors
func Reason(err error) string {
	switch ErrorCode(err) {
	case CodeInsufficientCredits:
		return ReasonInsufficient
	case CodeInvalidAmount:
		return ReasonInvalidAmount
	case CodeInvalidUserID:
		return ReasonInvalidUserID
	case CodeInvalidReferralCode:
		return ReasonInvalidCode
	case CodeSelfReferral:
		return ReasonSelfReferral
	case CodeAlreadyReferred:
		return ReasonAlreadyReferred
	case CodeCodeGenerationFailed:
		return ReasonCodeGenerationExhausted
	case CodeInvalidSignature:
		return ReasonInvalidSignature
	case CodeAccountNotFound, CodeReferralNotFound, CodePurchaseNotFound:
		return ReasonNotFound
	case CodeUnauthorized:
		return ReasonUnauthorized
	case CodeForbidden:
		return ReasonForbidden
	case CodeRateLimited:
		return ReasonRateLimited
	case CodeGenerationFailed:
		return ReasonGenerationFailed
	case CodeInvalidRequest, CodeConstraintViolation:
		return ReasonInvalidRequest
	default:
		return ReasonInternal
	}
}

// InsufficientCreditsError provides detailed error information for an exhausted balance
type InsufficientCreditsError struct {
	UserID  string
	Credits int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s: available %d", e.UserID, e.Credits)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"credits":    e.Credits,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID string, credits int64) error {
	return &InsufficientCreditsError{UserID: userID, Credits: credits}
}

// ReferralError represents a failed referral operation
type ReferralError struct {
	UserID     string
	ReferrerID string
	Code       string
	Err        error
}

// Error implements the error interface for ReferralError
func (e *ReferralError) Error() string {
	return fmt.Sprintf("referral failed for user %s (code: %s, referrer: %s): %v",
		e.UserID, e.Code, e.ReferrerID, e.Err)
}

// Unwrap returns the underlying error
func (e *ReferralError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReferralError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "referral_error",
		"user_id":     e.UserID,
		"referrer_id": e.ReferrerID,
		"code":        e.Code,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewReferralError creates a detailed referral error
func NewReferralError(userID, referrerID, code string, err error) error {
	return &ReferralError{UserID: userID, ReferrerID: referrerID, Code: code, Err: err}
}

// ReconciliationError represents a failure in one step of payment reconciliation
type ReconciliationError struct {
	EventID   string
	SessionID string
	UserID    string
	Step      string
	Err       error
}

// Error implements the error interface for ReconciliationError
func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation failed at %s for session %s (event: %s, user: %s): %v",
		e.Step, e.SessionID, e.EventID, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReconciliationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "reconciliation_error",
		"event_id":   e.EventID,
		"session_id": e.SessionID,
		"user_id":    e.UserID,
		"step":       e.Step,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewReconciliationError creates a detailed reconciliation error
func NewReconciliationError(eventID, sessionID, userID, step string, err error) error {
	return &ReconciliationError{EventID: eventID, SessionID: sessionID, UserID: userID, Step: step, Err: err}
}

// ValidationError describes a rejected request field
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is checks if the target error is an ErrInvalidRequest
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsInsufficientCreditsError checks if the error is related to an exhausted balance
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrReferralNotFound) ||
		errors.Is(err, ErrPurchaseNotFound)
}

// IsDuplicateRecordError checks if the error came from a unique constraint
func IsDuplicateRecordError(err error) bool {
	return errors.Is(err, ErrDuplicateRecord)
}
