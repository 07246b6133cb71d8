package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/soulbind/kyc-attestor/internal/adapter"
	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/logger"
	"github.com/soulbind/kyc-attestor/internal/store"
)

// Registry defines the interface for credential registry operations.
// Mutations carry no authorization checks, the issuer service gates them.
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// DeriveKey computes the storage key of an identity's credential
	DeriveKey(identity domain.Identity) domain.CredentialKey

	// Create inserts a new credential for an identity through the given
	// store, so issuance can run it inside an enclosing transaction
	Create(ctx context.Context, s store.Store, identity domain.Identity, tier domain.Tier, expiry int64, contentID string) (*domain.Credential, error)

	// Get retrieves a credential by its derived key
	Get(ctx context.Context, key domain.CredentialKey) (*domain.Credential, error)

	// GetByIdentity retrieves the credential held by an identity
	GetByIdentity(ctx context.Context, identity domain.Identity) (*domain.Credential, error)

	// SetVerified sets the verified flag on a credential
	SetVerified(ctx context.Context, key domain.CredentialKey, verified bool) (*domain.Credential, error)

	// SetExpiry sets the expiry timestamp on a credential
	SetExpiry(ctx context.Context, key domain.CredentialKey, expiry int64) (*domain.Credential, error)

	// IsValid reports whether an identity holds a currently valid credential.
	// It is total: missing, unverified and expired credentials are all false.
	IsValid(ctx context.Context, identity domain.Identity) bool
}

// registry is the internal implementation of Registry interface
type registry struct {
	store store.Store
	clock adapter.Clock
}

// New creates a new Registry backed by the given store
func New(s store.Store, clock adapter.Clock) Registry {
	return &registry{
		store: s,
		clock: clock,
	}
}

// DeriveKey computes the storage key of an identity's credential.
// The digest is SHA-256 over namespace, lowercase identity and collision
// domain, so the mapping is deterministic and case-insensitive.
func (r *registry) DeriveKey(identity domain.Identity) domain.CredentialKey {
	h := sha256.New()
	h.Write([]byte(domain.CREDENTIAL_NAMESPACE))
	h.Write([]byte(strings.ToLower(identity.String())))
	h.Write([]byte(domain.CREDENTIAL_COLLISION_DOMAIN))
	return domain.CredentialKey("0x" + hex.EncodeToString(h.Sum(nil)))
}

// Create inserts a new credential for an identity. New credentials start
// verified and are never transferable.
func (r *registry) Create(ctx context.Context, s store.Store, identity domain.Identity, tier domain.Tier, expiry int64, contentID string) (*domain.Credential, error) {
	key := r.DeriveKey(identity)

	row, err := s.CreateCredential(ctx, store.CreateCredentialInput{
		CredentialKey: key.String(),
		OwnerAddress:  identity.String(),
		Tier:          tier.String(),
		Verified:      true,
		Expiry:        expiry,
		ContentID:     contentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	return row.ToDomain(), nil
}

// Get retrieves a credential by its derived key
func (r *registry) Get(ctx context.Context, key domain.CredentialKey) (*domain.Credential, error) {
	row, err := r.store.GetCredentialByKey(ctx, key.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	if row == nil {
		return nil, domain.ErrCredentialNotFound
	}
	return row.ToDomain(), nil
}

// GetByIdentity retrieves the credential held by an identity
func (r *registry) GetByIdentity(ctx context.Context, identity domain.Identity) (*domain.Credential, error) {
	return r.Get(ctx, r.DeriveKey(identity))
}

// SetVerified sets the verified flag on a credential
func (r *registry) SetVerified(ctx context.Context, key domain.CredentialKey, verified bool) (*domain.Credential, error) {
	row, err := r.store.UpdateCredentialVerified(ctx, key.String(), verified)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// SetExpiry sets the expiry timestamp on a credential
func (r *registry) SetExpiry(ctx context.Context, key domain.CredentialKey, expiry int64) (*domain.Credential, error) {
	row, err := r.store.UpdateCredentialExpiry(ctx, key.String(), expiry)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// IsValid reports whether an identity holds a currently valid credential.
// Store failures are logged and reported as invalid rather than surfaced.
func (r *registry) IsValid(ctx context.Context, identity domain.Identity) bool {
	row, err := r.store.GetCredentialByKey(ctx, r.DeriveKey(identity).String())
	if err != nil {
		logger.Error(err, zap.String("message", "Failed to check credential validity"), zap.String("identity", identity.String()))
		return false
	}
	if row == nil {
		return false
	}
	return row.ToDomain().IsValidAt(r.clock.Now())
}
