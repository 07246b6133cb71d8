package store

import (
	"context"

	"gorm.io/datatypes"

	"github.com/soulbind/kyc-attestor/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// WithTransaction runs fn against a store bound to a single database
	// transaction. Returning an error from fn rolls everything back.
	WithTransaction(ctx context.Context, fn func(Store) error) error

	// CreateCredential inserts a new credential row
	CreateCredential(ctx context.Context, input CreateCredentialInput) (*schema.Credential, error)
	// GetCredentialByKey retrieves a credential by its derived key
	GetCredentialByKey(ctx context.Context, key string) (*schema.Credential, error)
	// UpdateCredentialVerified sets the verified flag on a credential
	UpdateCredentialVerified(ctx context.Context, key string, verified bool) (*schema.Credential, error)
	// UpdateCredentialExpiry sets the expiry timestamp on a credential
	UpdateCredentialExpiry(ctx context.Context, key string, expiry int64) (*schema.Credential, error)

	// GetAccount retrieves the ledger row for an address
	GetAccount(ctx context.Context, address string) (*schema.Account, error)
	// LockAccount takes a row-level lock on the ledger row for an address,
	// creating the row first if it does not exist yet
	LockAccount(ctx context.Context, address string) (*schema.Account, error)
	// CreditBalance adds amount to an address's balance, creating the row if absent
	CreditBalance(ctx context.Context, address string, amount uint64) (*schema.Account, error)
	// TransferBalance moves amount from one address to another
	TransferBalance(ctx context.Context, from string, to string, amount uint64) error
	// IncrementMintNonce advances an address's mint nonce by one
	IncrementMintNonce(ctx context.Context, address string) error
	// SetMintNonce pins an address's mint nonce to an explicit value
	SetMintNonce(ctx context.Context, address string, nonce uint64) (*schema.Account, error)

	// GetIssuerConfig retrieves the singleton issuer configuration
	GetIssuerConfig(ctx context.Context) (*schema.IssuerConfig, error)
	// SeedIssuerConfig inserts the issuer configuration unless one exists already
	SeedIssuerConfig(ctx context.Context, input SeedIssuerConfigInput) error
	// UpdateIssuerPublicKey rotates the challenge verification key
	UpdateIssuerPublicKey(ctx context.Context, publicKey string) (*schema.IssuerConfig, error)
	// UpdateIssuerFeePerYear sets the fee rate in micro-USD per year
	UpdateIssuerFeePerYear(ctx context.Context, feePerYear uint64) (*schema.IssuerConfig, error)
	// UpdateIssuerPriceFeedID switches the oracle price feed
	UpdateIssuerPriceFeedID(ctx context.Context, priceFeedID string) (*schema.IssuerConfig, error)

	// CreateMintReceipt appends the audit receipt for a successful issuance
	CreateMintReceipt(ctx context.Context, input CreateMintReceiptInput) error
}

// CreateCredentialInput carries the columns of a new credential row
type CreateCredentialInput struct {
	CredentialKey string
	OwnerAddress  string
	Tier          string
	Verified      bool
	Expiry        int64
	ContentID     string
}

// SeedIssuerConfigInput carries the initial issuer configuration
type SeedIssuerConfigInput struct {
	AdminAddress       string
	BeneficiaryAddress string
	PublicKey          string
	FeePerYear         uint64
	PriceFeedID        string
}

// CreateMintReceiptInput carries the audit trail entry written at issuance
type CreateMintReceiptInput struct {
	ReceiptID       string
	CredentialKey   string
	ReceiverAddress string
	FeePaid         uint64
	Nonce           uint64
	Payload         datatypes.JSON
}
