package issuer

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/soulbind/kyc-attestor/internal/adapter"
	"github.com/soulbind/kyc-attestor/internal/challenge"
	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/events"
	"github.com/soulbind/kyc-attestor/internal/fee"
	"github.com/soulbind/kyc-attestor/internal/oracle"
	"github.com/soulbind/kyc-attestor/internal/registry"
	"github.com/soulbind/kyc-attestor/internal/store"
)

// FeeQuote is the answer to a fee enquiry for a given validity duration.
// Price is nil when the duration is zero and the oracle was never consulted.
type FeeQuote struct {
	Duration uint64             `json:"duration"`
	Fee      uint64             `json:"fee"`
	Price    *domain.PriceQuote `json:"price,omitempty"`
}

// Service defines the interface for issuing authority operations
//
//go:generate mockgen -source=service.go -destination=../mocks/issuer_service.go -package=mocks -mock_names=Service=MockService
type Service interface {
	// Mint redeems a signed mint authorization for the caller, charging the
	// oracle-priced fee and issuing the credential in one transaction
	Mint(ctx context.Context, caller domain.Identity, req domain.MintRequest) (*domain.MintResult, error)

	// RequiredFee quotes the fee for a validity duration at the current
	// oracle price and fee rate
	RequiredFee(ctx context.Context, duration uint64) (*FeeQuote, error)

	// GetCredential retrieves a credential by its derived key
	GetCredential(ctx context.Context, key domain.CredentialKey) (*domain.Credential, error)

	// GetCredentialByIdentity retrieves the credential held by an identity
	GetCredentialByIdentity(ctx context.Context, identity domain.Identity) (*domain.Credential, error)

	// IsValid reports whether an identity holds a currently valid credential
	IsValid(ctx context.Context, identity domain.Identity) bool

	// GetAccount retrieves ledger state for an identity. Untouched identities
	// read as zero-valued accounts.
	GetAccount(ctx context.Context, identity domain.Identity) (*domain.Account, error)

	// GetMintNonce returns the nonce the identity's next challenge must carry
	GetMintNonce(ctx context.Context, identity domain.Identity) (uint64, error)

	// GetIssuerConfig retrieves the issuing authority configuration
	GetIssuerConfig(ctx context.Context) (*domain.IssuerConfig, error)

	// SetPublicKey rotates the challenge verification key
	SetPublicKey(ctx context.Context, caller domain.Identity, publicKey string) (*domain.IssuerConfig, error)

	// SetFeeRate sets the fee rate in micro-USD per year of validity
	SetFeeRate(ctx context.Context, caller domain.Identity, feePerYear uint64) (*domain.IssuerConfig, error)

	// SetPriceFeed switches the oracle price feed
	SetPriceFeed(ctx context.Context, caller domain.Identity, priceFeedID string) (*domain.IssuerConfig, error)

	// SetVerified flips the verified flag on an identity's credential
	SetVerified(ctx context.Context, caller domain.Identity, identity domain.Identity, verified bool) (*domain.Credential, error)

	// SetExpiry moves the expiry timestamp on an identity's credential
	SetExpiry(ctx context.Context, caller domain.Identity, identity domain.Identity, expiry int64) (*domain.Credential, error)

	// CreditAccount adds funds to an identity's ledger balance
	CreditAccount(ctx context.Context, caller domain.Identity, identity domain.Identity, amount uint64) (*domain.Account, error)

	// BumpNonce advances an identity's mint nonce, invalidating any
	// authorization signed over the previous value
	BumpNonce(ctx context.Context, caller domain.Identity, identity domain.Identity) (*domain.Account, error)
}

// service is the internal implementation of Service interface
type service struct {
	store      store.Store
	oracle     oracle.Client
	verifier   challenge.Verifier
	registry   registry.Registry
	dispatcher events.Dispatcher
	clock      adapter.Clock
	json       adapter.JSON
	jcs        adapter.JCS
}

// NewService creates a new issuing authority service
func NewService(
	st store.Store,
	oracleClient oracle.Client,
	verifier challenge.Verifier,
	reg registry.Registry,
	dispatcher events.Dispatcher,
	clock adapter.Clock,
	jsonAdapter adapter.JSON,
	jcsAdapter adapter.JCS,
) Service {
	return &service{
		store:      st,
		oracle:     oracleClient,
		verifier:   verifier,
		registry:   reg,
		dispatcher: dispatcher,
		clock:      clock,
		json:       jsonAdapter,
		jcs:        jcsAdapter,
	}
}

// Mint redeems a signed mint authorization for the caller.
// The order inside the transaction is fixed: lock the account, debit the fee,
// verify the challenge against the locked nonce, create the credential, write
// the receipt, advance the nonce. Any failure rolls the whole thing back.
func (s *service) Mint(ctx context.Context, caller domain.Identity, req domain.MintRequest) (*domain.MintResult, error) {
	// Only the receiver redeems its own authorization
	if caller != req.Receiver {
		return nil, domain.ErrUnauthorized
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	publicKey, err := decodePublicKey(cfg.PublicKey)
	if err != nil {
		return nil, err
	}

	// Price the issuance before touching any state. Zero-duration mints skip
	// the oracle entirely and are free.
	var feeRequired uint64
	if req.Duration > 0 {
		quote, err := s.oracle.PriceOf(ctx, cfg.PriceFeedID)
		if err != nil {
			return nil, err
		}

		feeRequired, err = fee.RequiredFee(req.Duration, cfg.FeePerYear, *quote)
		if err != nil {
			return nil, err
		}
	}

	var result *domain.MintResult
	err = s.store.WithTransaction(ctx, func(tx store.Store) error {
		locked, err := tx.LockAccount(ctx, req.Receiver.String())
		if err != nil {
			return fmt.Errorf("failed to lock receiver account: %w", err)
		}
		nonce := locked.MintNonce

		if feeRequired > 0 {
			if err := tx.TransferBalance(ctx, req.Receiver.String(), cfg.BeneficiaryAddress.String(), feeRequired); err != nil {
				return err
			}
		}

		params := challenge.MintParams{
			Receiver:  req.Receiver,
			ContentID: req.ContentID,
			ExpiresAt: req.Expiry,
			Duration:  req.Duration,
			Tier:      req.Tier,
		}
		if err := s.verifier.Verify(params, nonce, req.Signature, publicKey); err != nil {
			return err
		}

		cred, err := s.registry.Create(ctx, tx, req.Receiver, req.Tier, req.Expiry, req.ContentID)
		if err != nil {
			return err
		}

		payload, err := s.receiptPayload(params, nonce, req.Signature)
		if err != nil {
			return err
		}

		if err := tx.CreateMintReceipt(ctx, store.CreateMintReceiptInput{
			ReceiptID:       domain.NewEventID(s.clock.Now()),
			CredentialKey:   cred.Key.String(),
			ReceiverAddress: req.Receiver.String(),
			FeePaid:         feeRequired,
			Nonce:           nonce,
			Payload:         datatypes.JSON(payload),
		}); err != nil {
			return err
		}

		if err := tx.IncrementMintNonce(ctx, req.Receiver.String()); err != nil {
			return err
		}

		result = &domain.MintResult{
			CredentialKey: cred.Key,
			FeePaid:       feeRequired,
			Nonce:         nonce,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(&domain.CredentialEvent{
		Type:          domain.EventTypeMinted,
		Receiver:      req.Receiver,
		CredentialKey: result.CredentialKey,
		Tier:          req.Tier,
		Expiry:        req.Expiry,
		Duration:      req.Duration,
		FeePaid:       result.FeePaid,
		Nonce:         result.Nonce,
	})

	return result, nil
}

// RequiredFee quotes the fee for a validity duration
func (s *service) RequiredFee(ctx context.Context, duration uint64) (*FeeQuote, error) {
	if duration == 0 {
		return &FeeQuote{Duration: 0, Fee: 0}, nil
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := s.oracle.PriceOf(ctx, cfg.PriceFeedID)
	if err != nil {
		return nil, err
	}

	required, err := fee.RequiredFee(duration, cfg.FeePerYear, *quote)
	if err != nil {
		return nil, err
	}

	return &FeeQuote{
		Duration: duration,
		Fee:      required,
		Price:    quote,
	}, nil
}

// GetCredential retrieves a credential by its derived key
func (s *service) GetCredential(ctx context.Context, key domain.CredentialKey) (*domain.Credential, error) {
	return s.registry.Get(ctx, key)
}

// GetCredentialByIdentity retrieves the credential held by an identity
func (s *service) GetCredentialByIdentity(ctx context.Context, identity domain.Identity) (*domain.Credential, error) {
	return s.registry.GetByIdentity(ctx, identity)
}

// IsValid reports whether an identity holds a currently valid credential
func (s *service) IsValid(ctx context.Context, identity domain.Identity) bool {
	return s.registry.IsValid(ctx, identity)
}

// GetAccount retrieves ledger state for an identity
func (s *service) GetAccount(ctx context.Context, identity domain.Identity) (*domain.Account, error) {
	row, err := s.store.GetAccount(ctx, identity.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if row == nil {
		// Accounts come into being lazily; an untouched identity is
		// indistinguishable from a zero-valued one
		return &domain.Account{Address: identity}, nil
	}
	return row.ToDomain(), nil
}

// GetMintNonce returns the nonce the identity's next challenge must carry
func (s *service) GetMintNonce(ctx context.Context, identity domain.Identity) (uint64, error) {
	account, err := s.GetAccount(ctx, identity)
	if err != nil {
		return 0, err
	}
	return account.MintNonce, nil
}

// GetIssuerConfig retrieves the issuing authority configuration
func (s *service) GetIssuerConfig(ctx context.Context) (*domain.IssuerConfig, error) {
	return s.loadConfig(ctx)
}

// SetPublicKey rotates the challenge verification key
func (s *service) SetPublicKey(ctx context.Context, caller domain.Identity, publicKey string) (*domain.IssuerConfig, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if _, err := decodePublicKey(publicKey); err != nil {
		return nil, err
	}

	row, err := s.store.UpdateIssuerPublicKey(ctx, strings.TrimPrefix(publicKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to update public key: %w", err)
	}
	return row.ToDomain(), nil
}

// SetFeeRate sets the fee rate in micro-USD per year of validity
func (s *service) SetFeeRate(ctx context.Context, caller domain.Identity, feePerYear uint64) (*domain.IssuerConfig, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	row, err := s.store.UpdateIssuerFeePerYear(ctx, feePerYear)
	if err != nil {
		return nil, fmt.Errorf("failed to update fee rate: %w", err)
	}
	return row.ToDomain(), nil
}

// SetPriceFeed switches the oracle price feed
func (s *service) SetPriceFeed(ctx context.Context, caller domain.Identity, priceFeedID string) (*domain.IssuerConfig, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if priceFeedID == "" {
		return nil, fmt.Errorf("price feed id must not be empty")
	}

	row, err := s.store.UpdateIssuerPriceFeedID(ctx, priceFeedID)
	if err != nil {
		return nil, fmt.Errorf("failed to update price feed: %w", err)
	}
	return row.ToDomain(), nil
}

// SetVerified flips the verified flag on an identity's credential
func (s *service) SetVerified(ctx context.Context, caller domain.Identity, identity domain.Identity, verified bool) (*domain.Credential, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	cred, err := s.registry.SetVerified(ctx, s.registry.DeriveKey(identity), verified)
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(&domain.CredentialEvent{
		Type:          domain.EventTypeVerified,
		Receiver:      cred.Owner,
		CredentialKey: cred.Key,
		Verified:      &cred.Verified,
	})

	return cred, nil
}

// SetExpiry moves the expiry timestamp on an identity's credential
func (s *service) SetExpiry(ctx context.Context, caller domain.Identity, identity domain.Identity, expiry int64) (*domain.Credential, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	cred, err := s.registry.SetExpiry(ctx, s.registry.DeriveKey(identity), expiry)
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(&domain.CredentialEvent{
		Type:          domain.EventTypeExpiry,
		Receiver:      cred.Owner,
		CredentialKey: cred.Key,
		Expiry:        cred.Expiry,
	})

	return cred, nil
}

// CreditAccount adds funds to an identity's ledger balance
func (s *service) CreditAccount(ctx context.Context, caller domain.Identity, identity domain.Identity, amount uint64) (*domain.Account, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	row, err := s.store.CreditBalance(ctx, identity.String(), amount)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// BumpNonce advances an identity's mint nonce
func (s *service) BumpNonce(ctx context.Context, caller domain.Identity, identity domain.Identity) (*domain.Account, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	var result *domain.Account
	err := s.store.WithTransaction(ctx, func(tx store.Store) error {
		// Lock creates the row for an untouched identity, so a bump is
		// possible before the identity ever minted or was credited
		locked, err := tx.LockAccount(ctx, identity.String())
		if err != nil {
			return fmt.Errorf("failed to lock account: %w", err)
		}

		if err := tx.IncrementMintNonce(ctx, identity.String()); err != nil {
			return err
		}

		result = locked.ToDomain()
		result.MintNonce++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadConfig retrieves the issuer configuration, which must have been seeded
func (s *service) loadConfig(ctx context.Context) (*domain.IssuerConfig, error) {
	row, err := s.store.GetIssuerConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get issuer config: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("issuer config has not been seeded")
	}
	return row.ToDomain(), nil
}

// requireAdmin loads the issuer configuration and rejects any caller other
// than the configured admin
func (s *service) requireAdmin(ctx context.Context, caller domain.Identity) error {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.AdminAddress {
		return domain.ErrUnauthorized
	}
	return nil
}

// receiptPayload records the exact challenge bytes that were verified along
// with the redeeming signature
func (s *service) receiptPayload(params challenge.MintParams, nonce uint64, signature []byte) ([]byte, error) {
	challengeBytes, err := challenge.ChallengeBytes(s.json, s.jcs, params, nonce)
	if err != nil {
		return nil, err
	}

	payload, err := s.json.Marshal(struct {
		Challenge json.RawMessage `json:"challenge"`
		Signature string          `json:"signature"`
	}{
		Challenge: challengeBytes,
		Signature: "0x" + hex.EncodeToString(signature),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt payload: %w", err)
	}
	return payload, nil
}

// decodePublicKey decodes a hex-encoded ed25519 public key, tolerating a 0x prefix
func decodePublicKey(publicKey string) ([]byte, error) {
	decoded, err := hex.DecodeString(strings.TrimPrefix(publicKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode issuer public key: %w", err)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("issuer public key must be %d bytes, got %d", ed25519.PublicKeySize, len(decoded))
	}
	return decoded, nil
}
