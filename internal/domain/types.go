package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Identity represents a participant address in lowercase 0x-prefixed hex
type Identity string

// Tier represents the KYC attestation level carried by a credential
type Tier string

const (
	TierKYC1 Tier = "KYC_1"
	TierKYC2 Tier = "KYC_2"
	TierKYC3 Tier = "KYC_3"
)

// IsValid checks if a tier is one of the supported attestation levels
func (t Tier) IsValid() bool {
	return t == TierKYC1 || t == TierKYC2 || t == TierKYC3
}

// String returns the string representation of the Tier
func (t Tier) String() string {
	return string(t)
}

// NewIdentity normalizes an address into an Identity.
// The canonical form is lowercase hex so that derivation and lookups are
// case-insensitive over the wire representation.
func NewIdentity(address string) (Identity, bool) {
	if !common.IsHexAddress(address) {
		return "", false
	}
	return Identity(strings.ToLower(common.HexToAddress(address).Hex())), true
}

// IsValidIdentity checks if an address parses as an identity
func IsValidIdentity(address string) bool {
	return common.IsHexAddress(address)
}

// String returns the string representation of the Identity
func (i Identity) String() string {
	return string(i)
}

// CredentialKey is the derived storage key of a credential, a 0x-prefixed
// hex encoding of a 32-byte digest
type CredentialKey string

// String returns the string representation of the CredentialKey
func (k CredentialKey) String() string {
	return string(k)
}

// Valid checks if the key has the expected 0x + 64 hex character shape
func (k CredentialKey) Valid() bool {
	if len(k) != 66 || !strings.HasPrefix(string(k), "0x") {
		return false
	}
	for _, c := range k[2:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Credential represents a soulbound attestation record.
// Transferable is false from creation on and no operation re-enables it.
type Credential struct {
	Key          CredentialKey `json:"credential_key"`
	Owner        Identity      `json:"owner"`
	Tier         Tier          `json:"tier"`
	Verified     bool          `json:"verified"`
	Expiry       int64         `json:"expiry"` // unix seconds
	ContentID    string        `json:"content_id"`
	Transferable bool          `json:"transferable"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsValidAt reports whether the credential attests a verified identity at
// the given instant. Validity ends exactly at the expiry timestamp.
func (c *Credential) IsValidAt(now time.Time) bool {
	return c.Verified && now.Unix() < c.Expiry
}

// Account represents the per-identity ledger state: the protocol mint nonce
// and a balance in base units of the fee asset
type Account struct {
	Address   Identity  `json:"address"`
	MintNonce uint64    `json:"mint_nonce"`
	Balance   uint64    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IssuerConfig is the singleton issuing-authority configuration
type IssuerConfig struct {
	AdminAddress       Identity  `json:"admin_address"`
	BeneficiaryAddress Identity  `json:"beneficiary_address"`
	PublicKey          string    `json:"public_key"`   // hex-encoded ed25519 public key
	FeePerYear         uint64    `json:"fee_per_year"` // micro-USD per year of validity
	PriceFeedID        string    `json:"price_feed_id"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// PriceQuote is an oracle quote expressed as Magnitude * 10^(-NegExponent)
// in USD per whole asset
type PriceQuote struct {
	Magnitude   uint64 `json:"magnitude"`
	NegExponent uint64 `json:"neg_exponent"`
	PublishTime int64  `json:"publish_time,omitempty"`
}

// MintRequest carries the parameters of a credential issuance attempt
type MintRequest struct {
	Receiver  Identity
	ContentID string
	Expiry    int64
	Duration  uint64
	Tier      Tier
	Signature []byte
}

// MintResult is returned on successful issuance
type MintResult struct {
	CredentialKey CredentialKey `json:"credential_key"`
	FeePaid       uint64        `json:"fee_paid"`
	Nonce         uint64        `json:"nonce"`
}
