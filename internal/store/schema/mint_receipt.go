package schema

import (
	"time"

	"gorm.io/datatypes"
)

// MintReceipt represents the mint_receipts table - an append-only audit trail
// of successful issuances. One row per credential, written in the same
// transaction that creates the credential.
type MintReceipt struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ReceiptID is a ULID assigned at issuance time, unique per receipt
	ReceiptID string `gorm:"column:receipt_id;not null;uniqueIndex;type:text"`
	// CredentialKey is the derived key of the credential this receipt covers
	CredentialKey string `gorm:"column:credential_key;not null;uniqueIndex;type:text"`
	// ReceiverAddress is the identity the credential was issued to
	ReceiverAddress string `gorm:"column:receiver_address;not null;type:text;index"`
	// FeePaid is the fee debited at issuance, in base units of the fee asset
	FeePaid uint64 `gorm:"column:fee_paid;not null;default:0"`
	// Nonce is the challenge nonce the issuance consumed
	Nonce uint64 `gorm:"column:nonce;not null"`
	// Payload is the full challenge and pricing context at issuance time
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// CreatedAt is the timestamp when the receipt was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MintReceipt model
func (MintReceipt) TableName() string {
	return "mint_receipts"
}
