package schema

import (
	"time"

	"github.com/soulbind/kyc-attestor/internal/domain"
)

// IssuerConfigID is the primary key of the single issuer_configs row
const IssuerConfigID = 1

// IssuerConfig represents the issuer_configs table - a singleton row holding
// the issuing authority's trust anchors and fee policy. The row is seeded on
// first boot and mutated only through admin operations.
type IssuerConfig struct {
	// ID is always IssuerConfigID; the check constraint in the DDL pins it
	ID int64 `gorm:"column:id;primaryKey"`
	// AdminAddress is the only identity allowed to perform admin mutations
	AdminAddress string `gorm:"column:admin_address;not null;type:text"`
	// BeneficiaryAddress receives mint fees
	BeneficiaryAddress string `gorm:"column:beneficiary_address;not null;type:text"`
	// PublicKey is the hex-encoded ed25519 key mint challenges must verify against
	PublicKey string `gorm:"column:public_key;not null;type:text"`
	// FeePerYear is the fee rate in micro-USD per year of credential validity
	FeePerYear uint64 `gorm:"column:fee_per_year;not null;default:0"`
	// PriceFeedID selects the oracle price feed used to convert the fee to base units
	PriceFeedID string `gorm:"column:price_feed_id;not null;type:text"`
	// CreatedAt is the timestamp when the row was seeded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last admin mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the IssuerConfig model
func (IssuerConfig) TableName() string {
	return "issuer_configs"
}

// ToDomain converts the row into the domain representation
func (c *IssuerConfig) ToDomain() *domain.IssuerConfig {
	return &domain.IssuerConfig{
		AdminAddress:       domain.Identity(c.AdminAddress),
		BeneficiaryAddress: domain.Identity(c.BeneficiaryAddress),
		PublicKey:          c.PublicKey,
		FeePerYear:         c.FeePerYear,
		PriceFeedID:        c.PriceFeedID,
		UpdatedAt:          c.UpdatedAt,
	}
}
