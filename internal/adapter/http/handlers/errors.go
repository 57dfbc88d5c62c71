package handlers

import (
	"errors"
	"net/http"

	request "focusquote/internal/adapter/http/dto/request"
	"focusquote/internal/usecase"
	"focusquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errOwnerRequired       = pkg.NewDomainErrorSimple("OWNER_REQUIRED", "X-Owner-ID header is required", http.StatusUnauthorized)
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidQuery        = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// writeError answers with the AppError body. Causes of server errors are
// attached to the context for the request logger; they never reach the body.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// writeBindError answers a failed ShouldBind* call, listing the failing
// fields when the payload parsed but did not validate.
func writeBindError(c *gin.Context, base *pkg.AppError, err error) {
	if details := request.ValidationDetails(err); details != nil {
		writeError(c, base.WithDetails(details))
		return
	}
	writeError(c, base)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLinkToken):
		return pkg.NewDomainErrorSimple("INVALID_LINK_TOKEN", "Invalid or expired quote link", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotFound), errors.Is(err, usecase.ErrOwnerDataNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Photographer profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientPhoneMissing):
		return pkg.NewDomainErrorSimple("CLIENT_PHONE_MISSING", "Client has no phone number", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_QUOTE", "Invalid quote", err, http.StatusBadRequest).
			WithDetails(map[string]any{"reason": err.Error()})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapPublicError hides which part of a public link failed to resolve.
func mapPublicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLinkToken):
		return pkg.NewDomainErrorSimple("INVALID_LINK_TOKEN", "Invalid or expired quote link", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
