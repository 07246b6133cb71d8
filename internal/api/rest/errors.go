package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/soulbind/kyc-attestor/internal/api/shared/errors"
	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error. Structured
// APIErrors from request validation pass through unchanged.
func respondValidationError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusUnprocessableEntity, apiErr)
		return
	}

	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(err.Error()))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message, details...))
}

// respondInternalError responds with an internal server error and logs the cause
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondDomainError translates a service error into the REST error contract.
// fallback is the message used when the error is not a recognized domain class.
func respondDomainError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError("Caller is not authorized for this operation", err.Error()))
	case domain.IsAuthFailure(err):
		c.JSON(http.StatusUnauthorized, apierrors.NewAuthFailedError("Mint authorization did not verify", err.Error()))
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, apierrors.NewPaymentRequiredError("Account balance does not cover the mint fee", err.Error()))
	case errors.Is(err, domain.ErrDuplicateCredential):
		c.JSON(http.StatusConflict, apierrors.NewConflictError("Identity already holds a credential", err.Error()))
	case errors.Is(err, domain.ErrCredentialNotFound):
		respondNotFound(c, "Credential not found")
	case errors.Is(err, domain.ErrAccountNotFound):
		respondNotFound(c, "Account not found")
	case domain.IsOracleError(err):
		logger.ErrorCtx(c.Request.Context(), err)
		c.JSON(http.StatusBadGateway, apierrors.NewUpstreamError("Price oracle returned an unusable quote", err.Error()))
	case errors.Is(err, domain.ErrArithmeticOverflow):
		respondInternalError(c, err, "Fee computation overflowed")
	default:
		respondInternalError(c, err, fallback)
	}
}
