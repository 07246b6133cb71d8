package dto

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	apierrors "github.com/soulbind/kyc-attestor/internal/api/shared/errors"
	"github.com/soulbind/kyc-attestor/internal/domain"
)

// MintRequest represents the request body for redeeming a mint authorization
type MintRequest struct {
	Receiver  string `json:"receiver"`
	ContentID string `json:"content_id"`
	Expiry    int64  `json:"expiry"`
	Duration  uint64 `json:"duration"`
	Tier      string `json:"tier"`
	Signature string `json:"signature"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	// Validate: receiver must be provided and well formed
	if r.Receiver == "" {
		return apierrors.NewValidationError("receiver is required")
	}
	if !domain.IsValidIdentity(r.Receiver) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid receiver address: %s", r.Receiver))
	}

	// Validate: content ID must be provided
	if r.ContentID == "" {
		return apierrors.NewValidationError("content_id is required")
	}

	// Validate: expiry must be a positive unix timestamp
	if r.Expiry <= 0 {
		return apierrors.NewValidationError("expiry must be a positive unix timestamp")
	}

	// Validate: tier must be a supported attestation level
	if !domain.Tier(r.Tier).IsValid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid tier: %s", r.Tier))
	}

	// Validate: signature must be provided and hex encoded. Length is
	// deliberately not checked here. A decoded signature of the wrong size
	// is an authorization failure, not a malformed request.
	if r.Signature == "" {
		return apierrors.NewValidationError("signature is required")
	}
	if _, err := hex.DecodeString(strings.TrimPrefix(r.Signature, "0x")); err != nil {
		return apierrors.NewValidationError("signature must be hex encoded")
	}

	return nil
}

// ToDomain converts the request into its domain form.
// Callers must run Validate first.
func (r *MintRequest) ToDomain() domain.MintRequest {
	receiver, _ := domain.NewIdentity(r.Receiver)
	signature, _ := hex.DecodeString(strings.TrimPrefix(r.Signature, "0x"))

	return domain.MintRequest{
		Receiver:  receiver,
		ContentID: r.ContentID,
		Expiry:    r.Expiry,
		Duration:  r.Duration,
		Tier:      domain.Tier(r.Tier),
		Signature: signature,
	}
}

// SetPublicKeyRequest represents the request body for rotating the
// challenge verification key
type SetPublicKeyRequest struct {
	PublicKey string `json:"public_key"`
}

// Validate validates the request body
func (r *SetPublicKeyRequest) Validate() error {
	if r.PublicKey == "" {
		return apierrors.NewValidationError("public_key is required")
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(r.PublicKey, "0x"))
	if err != nil {
		return apierrors.NewValidationError("public_key must be hex encoded")
	}
	if len(raw) != ed25519.PublicKeySize {
		return apierrors.NewValidationError(fmt.Sprintf("public_key must decode to %d bytes", ed25519.PublicKeySize))
	}

	return nil
}

// SetFeeRateRequest represents the request body for updating the fee rate.
// A zero rate is legal and makes issuance free.
type SetFeeRateRequest struct {
	FeePerYear uint64 `json:"fee_per_year"`
}

// SetPriceFeedRequest represents the request body for switching the oracle
// price feed
type SetPriceFeedRequest struct {
	PriceFeedID string `json:"price_feed_id"`
}

// Validate validates the request body
func (r *SetPriceFeedRequest) Validate(debug bool) error {
	if r.PriceFeedID == "" {
		return apierrors.NewValidationError("price_feed_id is required")
	}

	// Validate: production feeds are 32-byte hex identifiers. Debug
	// deployments may target arbitrary mock feed labels.
	if !debug {
		raw, err := hex.DecodeString(strings.TrimPrefix(r.PriceFeedID, "0x"))
		if err != nil || len(raw) != 32 {
			return apierrors.NewValidationError("price_feed_id must be a 32-byte hex feed identifier")
		}
	}

	return nil
}

// SetVerifiedRequest represents the request body for flipping the verified
// flag on a credential
type SetVerifiedRequest struct {
	Verified *bool `json:"verified"`
}

// Validate validates the request body
func (r *SetVerifiedRequest) Validate() error {
	// Pointer distinguishes an absent field from an explicit false
	if r.Verified == nil {
		return apierrors.NewValidationError("verified is required")
	}

	return nil
}

// SetExpiryRequest represents the request body for moving a credential's
// expiry timestamp
type SetExpiryRequest struct {
	Expiry int64 `json:"expiry"`
}

// Validate validates the request body
func (r *SetExpiryRequest) Validate() error {
	if r.Expiry <= 0 {
		return apierrors.NewValidationError("expiry must be a positive unix timestamp")
	}

	return nil
}

// CreditAccountRequest represents the request body for crediting a ledger
// balance
type CreditAccountRequest struct {
	Amount uint64 `json:"amount"`
}

// Validate validates the request body
func (r *CreditAccountRequest) Validate() error {
	if r.Amount == 0 {
		return apierrors.NewValidationError("amount must be positive")
	}

	return nil
}
