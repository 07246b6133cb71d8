package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soulbind/kyc-attestor/internal/api/middleware"
	"github.com/soulbind/kyc-attestor/internal/api/shared/dto"
	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/issuer"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Mint redeems a signed mint authorization for the authenticated caller
	// POST /api/v1/credentials/mint
	Mint(c *gin.Context)

	// GetCredential retrieves the credential held by an identity
	// GET /api/v1/credentials/:address
	GetCredential(c *gin.Context)

	// GetCredentialByKey retrieves a credential by its derived key
	// GET /api/v1/credentials/key/:key
	GetCredentialByKey(c *gin.Context)

	// GetValidity reports whether an identity holds a currently valid credential
	// GET /api/v1/credentials/:address/valid
	GetValidity(c *gin.Context)

	// GetFeeQuote quotes the mint fee for a validity duration
	// GET /api/v1/fees/quote?duration=<seconds>
	GetFeeQuote(c *gin.Context)

	// GetNonce returns the nonce an identity's next challenge must sign over
	// GET /api/v1/identities/:address/nonce
	GetNonce(c *gin.Context)

	// GetAccount retrieves ledger state for an identity
	// GET /api/v1/accounts/:address
	GetAccount(c *gin.Context)

	// GetIssuer retrieves the issuing authority configuration
	// GET /api/v1/issuer
	GetIssuer(c *gin.Context)

	// SetPublicKey rotates the challenge verification key (admin only)
	// PUT /api/v1/admin/issuer/public-key
	SetPublicKey(c *gin.Context)

	// SetFeeRate updates the fee rate (admin only)
	// PUT /api/v1/admin/issuer/fee-rate
	SetFeeRate(c *gin.Context)

	// SetPriceFeed switches the oracle price feed (admin only)
	// PUT /api/v1/admin/issuer/price-feed
	SetPriceFeed(c *gin.Context)

	// SetVerified flips the verified flag on an identity's credential (admin only)
	// PUT /api/v1/admin/credentials/:address/verified
	SetVerified(c *gin.Context)

	// SetExpiry moves the expiry timestamp on an identity's credential (admin only)
	// PUT /api/v1/admin/credentials/:address/expiry
	SetExpiry(c *gin.Context)

	// CreditAccount adds funds to an identity's ledger balance (admin only)
	// POST /api/v1/admin/accounts/:address/credit
	CreditAccount(c *gin.Context)

	// BumpNonce advances an identity's mint nonce (admin only)
	// POST /api/v1/admin/identities/:address/nonce
	BumpNonce(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug   bool
	service issuer.Service
}

// NewHandler creates a new REST API handler backed by the issuing service
func NewHandler(debug bool, service issuer.Service) Handler {
	return &handler{
		debug:   debug,
		service: service,
	}
}

// identityParam parses the :address path parameter into a normalized identity
func identityParam(c *gin.Context) (domain.Identity, bool) {
	address := c.Param("address")
	identity, ok := domain.NewIdentity(address)
	if !ok {
		respondBadRequest(c, fmt.Sprintf("Invalid address: %s", address))
		return "", false
	}

	return identity, true
}

// authenticatedCaller resolves the subject set by the auth middleware.
// Routes reaching this without the middleware are misconfigured.
func authenticatedCaller(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		respondUnauthorized(c, "Authentication required")
		return "", false
	}

	return identity, true
}

// Mint redeems a signed mint authorization for the authenticated caller
func (h *handler) Mint(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	// Validate request body
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.service.Mint(c.Request.Context(), caller, req.ToDomain())
	if err != nil {
		respondDomainError(c, err, "Failed to mint credential")
		return
	}

	c.JSON(http.StatusCreated, dto.FromMintResult(result))
}

// GetCredential retrieves the credential held by an identity
func (h *handler) GetCredential(c *gin.Context) {
	identity, ok := identityParam(c)
	if !ok {
		return
	}

	cred, err := h.service.GetCredentialByIdentity(c.Request.Context(), identity)
	if err != nil {
		respondDomainError(c, err, "Failed to get credential")
		return
	}

	c.JSON(http.StatusOK, dto.FromCredential(cred))
}

// GetCredentialByKey retrieves a credential by its derived key
func (h *handler) GetCredentialByKey(c *gin.Context) {
	key := domain.CredentialKey(strings.ToLower(c.Param("key")))
	if !key.Valid() {
		respondBadRequest(c, fmt.Sprintf("Invalid credential key: %s", c.Param("key")))
		return
	}

	cred, err := h.service.GetCredential(c.Request.Context(), key)
	if err != nil {
		respondDomainError(c, err, "Failed to get credential")
		return
	}

	c.JSON(http.StatusOK, dto.FromCredential(cred))
}

// GetValidity reports whether an identity holds a currently valid credential.
// The answer is always 200 with a boolean body.
func (h *handler) GetValidity(c *gin.Context) {
	identity, ok := identityParam(c)
	if !ok {
		return
	}

	valid := h.service.IsValid(c.Request.Context(), identity)

	c.JSON(http.StatusOK, dto.ValidityResponse{
		Address: identity.String(),
		Valid:   valid,
	})
}

// GetFeeQuote quotes the mint fee for a validity duration
func (h *handler) GetFeeQuote(c *gin.Context) {
	raw := c.Query("duration")
	if raw == "" {
		respondBadRequest(c, "duration query parameter is required")
		return
	}

	duration, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid duration: %s", raw))
		return
	}

	quote, err := h.service.RequiredFee(c.Request.Context(), duration)
	if err != nil {
		respondDomainError(c, err, "Failed to quote fee")
		return
	}

	c.JSON(http.StatusOK, dto.FromFeeQuote(quote))
}

// GetNonce returns the nonce an identity's next challenge must sign over
func (h *handler) GetNonce(c *gin.Context) {
	identity, ok := identityParam(c)
	if !ok {
		return
	}

	nonce, err := h.service.GetMintNonce(c.Request.Context(), identity)
	if err != nil {
		respondDomainError(c, err, "Failed to get nonce")
		return
	}

	c.JSON(http.StatusOK, dto.NonceResponse{
		Address:   identity.String(),
		MintNonce: nonce,
	})
}

// GetAccount retrieves ledger state for an identity
func (h *handler) GetAccount(c *gin.Context) {
	identity, ok := identityParam(c)
	if !ok {
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), identity)
	if err != nil {
		respondDomainError(c, err, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, dto.FromAccount(account))
}

// GetIssuer retrieves the issuing authority configuration
func (h *handler) GetIssuer(c *gin.Context) {
	cfg, err := h.service.GetIssuerConfig(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get issuer config")
		return
	}

	c.JSON(http.StatusOK, dto.FromIssuerConfig(cfg))
}

// SetPublicKey rotates the challenge verification key
func (h *handler) SetPublicKey(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	var req dto.SetPublicKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	cfg, err := h.service.SetPublicKey(c.Request.Context(), caller, req.PublicKey)
	if err != nil {
		respondDomainError(c, err, "Failed to set public key")
		return
	}

	c.JSON(http.StatusOK, dto.FromIssuerConfig(cfg))
}

// SetFeeRate updates the fee rate
func (h *handler) SetFeeRate(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	var req dto.SetFeeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	cfg, err := h.service.SetFeeRate(c.Request.Context(), caller, req.FeePerYear)
	if err != nil {
		respondDomainError(c, err, "Failed to set fee rate")
		return
	}

	c.JSON(http.StatusOK, dto.FromIssuerConfig(cfg))
}

// SetPriceFeed switches the oracle price feed
func (h *handler) SetPriceFeed(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	var req dto.SetPriceFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(h.debug); err != nil {
		respondValidationError(c, err)
		return
	}

	cfg, err := h.service.SetPriceFeed(c.Request.Context(), caller, req.PriceFeedID)
	if err != nil {
		respondDomainError(c, err, "Failed to set price feed")
		return
	}

	c.JSON(http.StatusOK, dto.FromIssuerConfig(cfg))
}

// SetVerified flips the verified flag on an identity's credential
func (h *handler) SetVerified(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	identity, ok := identityParam(c)
	if !ok {
		return
	}

	var req dto.SetVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	cred, err := h.service.SetVerified(c.Request.Context(), caller, identity, *req.Verified)
	if err != nil {
		respondDomainError(c, err, "Failed to set verified flag")
		return
	}

	c.JSON(http.StatusOK, dto.FromCredential(cred))
}

// SetExpiry moves the expiry timestamp on an identity's credential
func (h *handler) SetExpiry(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	identity, ok := identityParam(c)
	if !ok {
		return
	}

	var req dto.SetExpiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	cred, err := h.service.SetExpiry(c.Request.Context(), caller, identity, req.Expiry)
	if err != nil {
		respondDomainError(c, err, "Failed to set expiry")
		return
	}

	c.JSON(http.StatusOK, dto.FromCredential(cred))
}

// CreditAccount adds funds to an identity's ledger balance
func (h *handler) CreditAccount(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	identity, ok := identityParam(c)
	if !ok {
		return
	}

	var req dto.CreditAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	account, err := h.service.CreditAccount(c.Request.Context(), caller, identity, req.Amount)
	if err != nil {
		respondDomainError(c, err, "Failed to credit account")
		return
	}

	c.JSON(http.StatusOK, dto.FromAccount(account))
}

// BumpNonce advances an identity's mint nonce
func (h *handler) BumpNonce(c *gin.Context) {
	caller, ok := authenticatedCaller(c)
	if !ok {
		return
	}

	identity, ok := identityParam(c)
	if !ok {
		return
	}

	account, err := h.service.BumpNonce(c.Request.Context(), caller, identity)
	if err != nil {
		respondDomainError(c, err, "Failed to bump nonce")
		return
	}

	c.JSON(http.StatusOK, dto.FromAccount(account))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "kyc-attestor-api",
	})
}
