package schema

import (
	"time"

	"github.com/soulbind/kyc-attestor/internal/domain"
)

// Account represents the accounts table - per-identity ledger state.
// Rows are created lazily the first time an identity is credited, queried,
// or locked during a mint.
type Account struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the lowercase hex address of the account holder
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// MintNonce is the next expected challenge nonce for this identity.
	// It only ever moves forward, and only on successful issuance.
	MintNonce uint64 `gorm:"column:mint_nonce;not null;default:0"`
	// Balance is the spendable amount in base units of the fee asset
	Balance uint64 `gorm:"column:balance;not null;default:0"`
	// CreatedAt is the timestamp when this account row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this account was last touched
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// ToDomain converts the row into the domain representation
func (a *Account) ToDomain() *domain.Account {
	return &domain.Account{
		Address:   domain.Identity(a.Address),
		MintNonce: a.MintNonce,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
