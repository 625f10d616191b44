package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the marketplace domain.

// ErrNotFound converts a repository-level miss (gorm.ErrRecordNotFound or a
// repository sentinel) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict reports that the current state does not permit the requested
// transition, or that a uniqueness rule would be violated.
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus is the invalid-state half of the conflict taxonomy: the
// entity exists but its status forbids the operation.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// DatabaseError wraps an unexpected storage failure.
func DatabaseError(err error, domain, message string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, message, http.StatusInternalServerError)
}

// --- Reservations ---

var ErrItemNotReservable = New(
	CodeConflict,
	"reservation",
	"Item is not available for reservation",
	http.StatusConflict,
)

var ErrOwnItemReservation = New(
	CodeForbidden,
	"reservation",
	"Cannot reserve your own item",
	http.StatusForbidden,
)

var ErrNotReservationActor = New(
	CodeForbidden,
	"reservation",
	"Not authorized to act on this reservation",
	http.StatusForbidden,
)

// --- Reviews ---

var ErrReservationNotCompleted = New(
	CodeInvalidStatus,
	"review",
	"Only completed transactions can be reviewed",
	http.StatusBadRequest,
)

var ErrNotTransactionParty = New(
	CodeForbidden,
	"review",
	"Not a party to this transaction",
	http.StatusForbidden,
)

var ErrAlreadyReviewed = New(
	CodeConflict,
	"review",
	"This transaction has already been reviewed",
	http.StatusConflict,
)

// --- Chat ---

var ErrConversationAccessDenied = New(
	CodeForbidden,
	"chat",
	"Access to conversation denied",
	http.StatusForbidden,
)

// --- Social ---

var ErrCannotFollowSelf = New(
	CodeInvalidOperation,
	"social",
	"Cannot follow yourself",
	http.StatusBadRequest,
)

// --- Items ---

var ErrNotItemSeller = New(
	CodeForbidden,
	"item",
	"Not the seller of this item",
	http.StatusForbidden,
)

// --- Admin / auth ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"This email address is already in use",
	http.StatusConflict,
)

var ErrEmailNotVerified = New(
	CodeForbidden,
	"auth",
	"Email address is not verified",
	http.StatusForbidden,
)
