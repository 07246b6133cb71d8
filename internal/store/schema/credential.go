package schema

import (
	"time"

	"github.com/soulbind/kyc-attestor/internal/domain"
)

// Credential represents the credentials table - one soulbound attestation per identity.
// The credential key is derived deterministically from the owner address, so the
// unique indexes on key and owner enforce the same one-credential-per-identity rule
// from two directions.
type Credential struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CredentialKey is the derived lookup key (0x-prefixed hex of a 32-byte digest)
	CredentialKey string `gorm:"column:credential_key;not null;uniqueIndex;type:text"`
	// OwnerAddress is the lowercase hex address the credential is bound to
	OwnerAddress string `gorm:"column:owner_address;not null;uniqueIndex;type:text"`
	// Tier is the attestation level (KYC_1, KYC_2, KYC_3)
	Tier string `gorm:"column:tier;not null;type:text"`
	// Verified reflects the issuer's current attestation of the identity
	Verified bool `gorm:"column:verified;not null;default:true"`
	// Expiry is the unix timestamp at which the credential stops being valid
	Expiry int64 `gorm:"column:expiry;not null"`
	// ContentID points at the off-system evidence bundle backing the attestation
	ContentID string `gorm:"column:content_id;not null;type:text"`
	// Transferable is false from creation on; kept as a column so the
	// soulbound property is visible to direct SQL consumers
	Transferable bool `gorm:"column:transferable;not null;default:false"`
	// CreatedAt is the timestamp when the credential was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last admin mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Credential model
func (Credential) TableName() string {
	return "credentials"
}

// ToDomain converts the row into the domain representation
func (c *Credential) ToDomain() *domain.Credential {
	return &domain.Credential{
		Key:          domain.CredentialKey(c.CredentialKey),
		Owner:        domain.Identity(c.OwnerAddress),
		Tier:         domain.Tier(c.Tier),
		Verified:     c.Verified,
		Expiry:       c.Expiry,
		ContentID:    c.ContentID,
		Transferable: c.Transferable,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
