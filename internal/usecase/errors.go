package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound is the NotFound outcome. Every more specific not-found error
// wraps it.
var ErrNotFound = errors.New("not found")

var (
	ErrQuoteNotFound     = fmt.Errorf("quote %w", ErrNotFound)
	ErrOwnerDataNotFound = fmt.Errorf("owner data %w", ErrNotFound)
	ErrClientNotFound    = fmt.Errorf("client %w", ErrNotFound)
	ErrProfileNotFound   = fmt.Errorf("profile %w", ErrNotFound)
)

// ErrValidation marks input problems the editing flow is expected to fix.
var ErrValidation = errors.New("validation failed")

var (
	ErrClientRequired       = fmt.Errorf("%w: a client must be selected", ErrValidation)
	ErrItemsRequired        = fmt.Errorf("%w: at least one item is required", ErrValidation)
	ErrItemNotFound         = fmt.Errorf("%w: item not found in draft", ErrValidation)
	ErrInvalidItemField     = fmt.Errorf("%w: unknown item field", ErrValidation)
	ErrInvalidItemValue     = fmt.Errorf("%w: invalid item value", ErrValidation)
	ErrInvalidAdjustment    = fmt.Errorf("%w: discount and fees must not be negative", ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: unknown payment method", ErrValidation)
	ErrInvalidStatus        = fmt.Errorf("%w: unknown quote status", ErrValidation)
	ErrInvalidOwnerID       = fmt.Errorf("%w: invalid owner id", ErrValidation)
	ErrInvalidQuoteID       = fmt.Errorf("%w: invalid quote id", ErrValidation)
	ErrClientPhoneMissing   = fmt.Errorf("%w: client has no phone number", ErrValidation)
)

// ErrInvalidLinkToken is returned when signed public links are enabled and
// the token is missing, expired or bound to another quote.
var ErrInvalidLinkToken = errors.New("invalid public link token")
