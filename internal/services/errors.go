package services

import (
	"errors"
	"fmt"

	"wegotboard/internal/models"
	"wegotboard/internal/repositories"
)

// Error kinds. Every error returned by a service matches exactly one of these
// with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// Error is a service failure with a client-facing message.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// User errors
var (
	ErrRegisterFieldsRequired = &Error{Kind: ErrValidation, Message: "Name, email, and password are required"}
	ErrLoginFieldsRequired    = &Error{Kind: ErrValidation, Message: "Email and password are required"}
	ErrEmailTaken             = &Error{Kind: ErrConflict, Message: "Email is already registered"}
	ErrUserNotFound           = &Error{Kind: ErrNotFound, Message: "User not found"}
	ErrNotLoggedIn            = &Error{Kind: ErrUnauthorized, Message: "User is not logged in"}
	ErrPasswordIncorrect      = &Error{Kind: ErrUnauthorized, Message: "Password is incorrect"}
	ErrInvalidToken           = &Error{Kind: ErrUnauthorized, Message: "Invalid or expired token"}
	ErrSigningSecretMissing   = &Error{Kind: ErrInternal, Message: "Internal error"}
)

// Wishlist errors
var (
	ErrProductIDRequired = &Error{Kind: ErrValidation, Message: "productId is required"}
	ErrAlreadyInWishlist = &Error{Kind: ErrConflict, Message: "Product already in wishlist"}
	ErrNotInWishlist     = &Error{Kind: ErrNotFound, Message: "Product not found in wishlist"}
)

// Review errors
var (
	ErrReviewFieldsRequired = &Error{Kind: ErrValidation, Message: "User and rating are required."}
	ErrRatingOutOfRange     = &Error{Kind: ErrValidation, Message: "Rating must be between 1 and 5"}
	ErrReviewNotFound       = &Error{Kind: ErrNotFound, Message: "Review not found"}
)

// Catalog errors
var (
	ErrProductNotFound = &Error{Kind: ErrNotFound, Message: "Product not found"}
	ErrUnknownCategory = &Error{Kind: ErrValidation, Message: "Category does not exist"}
	ErrUnknownTag      = &Error{Kind: ErrValidation, Message: "Tag does not exist"}
)

// ValidationError reports which schema fields a document failed on.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return "Validation failed: " + e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func internalError(message string, err error) error {
	return &Error{Kind: ErrInternal, Message: message, Err: err}
}

// storeError maps a repository failure onto notFound when the document is
// missing and onto an internal error otherwise.
func storeError(err error, notFound *Error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return internalError(fmt.Sprintf("failed to %s", action), err)
}
