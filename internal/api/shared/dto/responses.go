package dto

import (
	"time"

	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/issuer"
)

// CredentialResponse represents a credential record
type CredentialResponse struct {
	CredentialKey string    `json:"credential_key"`
	Owner         string    `json:"owner"`
	Tier          string    `json:"tier"`
	Verified      bool      `json:"verified"`
	Expiry        int64     `json:"expiry"`
	ContentID     string    `json:"content_id"`
	Transferable  bool      `json:"transferable"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromCredential converts a domain credential into its response form
func FromCredential(c *domain.Credential) *CredentialResponse {
	return &CredentialResponse{
		CredentialKey: c.Key.String(),
		Owner:         c.Owner.String(),
		Tier:          c.Tier.String(),
		Verified:      c.Verified,
		Expiry:        c.Expiry,
		ContentID:     c.ContentID,
		Transferable:  c.Transferable,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ValidityResponse reports whether an identity holds a currently valid
// credential
type ValidityResponse struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
}

// AccountResponse represents per-identity ledger state. Identities that
// never minted or received funds read as zero-valued accounts.
type AccountResponse struct {
	Address   string `json:"address"`
	MintNonce uint64 `json:"mint_nonce"`
	Balance   uint64 `json:"balance"`
}

// FromAccount converts a domain account into its response form
func FromAccount(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Address:   a.Address.String(),
		MintNonce: a.MintNonce,
		Balance:   a.Balance,
	}
}

// NonceResponse carries the nonce the identity's next challenge must sign over
type NonceResponse struct {
	Address   string `json:"address"`
	MintNonce uint64 `json:"mint_nonce"`
}

// IssuerConfigResponse represents the issuing authority configuration
type IssuerConfigResponse struct {
	AdminAddress       string    `json:"admin_address"`
	BeneficiaryAddress string    `json:"beneficiary_address"`
	PublicKey          string    `json:"public_key"`
	FeePerYear         uint64    `json:"fee_per_year"`
	PriceFeedID        string    `json:"price_feed_id"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// FromIssuerConfig converts the domain issuer config into its response form
func FromIssuerConfig(cfg *domain.IssuerConfig) *IssuerConfigResponse {
	return &IssuerConfigResponse{
		AdminAddress:       cfg.AdminAddress.String(),
		BeneficiaryAddress: cfg.BeneficiaryAddress.String(),
		PublicKey:          cfg.PublicKey,
		FeePerYear:         cfg.FeePerYear,
		PriceFeedID:        cfg.PriceFeedID,
		UpdatedAt:          cfg.UpdatedAt,
	}
}

// MintResponse represents the outcome of a successful issuance
type MintResponse struct {
	CredentialKey string `json:"credential_key"`
	FeePaid       uint64 `json:"fee_paid"`
	Nonce         uint64 `json:"nonce"`
}

// FromMintResult converts a domain mint result into its response form
func FromMintResult(res *domain.MintResult) *MintResponse {
	return &MintResponse{
		CredentialKey: res.CredentialKey.String(),
		FeePaid:       res.FeePaid,
		Nonce:         res.Nonce,
	}
}

// PriceResponse represents the oracle quote a fee was derived from
type PriceResponse struct {
	Magnitude   uint64 `json:"magnitude"`
	NegExponent uint64 `json:"neg_exponent"`
	PublishTime int64  `json:"publish_time,omitempty"`
}

// FeeQuoteResponse represents a fee enquiry answer. Price is omitted when
// the duration is zero and the oracle was never consulted.
type FeeQuoteResponse struct {
	Duration uint64         `json:"duration"`
	Fee      uint64         `json:"fee"`
	Price    *PriceResponse `json:"price,omitempty"`
}

// FromFeeQuote converts an issuer fee quote into its response form
func FromFeeQuote(q *issuer.FeeQuote) *FeeQuoteResponse {
	resp := &FeeQuoteResponse{
		Duration: q.Duration,
		Fee:      q.Fee,
	}
	if q.Price != nil {
		resp.Price = &PriceResponse{
			Magnitude:   q.Price.Magnitude,
			NegExponent: q.Price.NegExponent,
			PublishTime: q.Price.PublishTime,
		}
	}

	return resp
}
