package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance.
// The gorm.DB must be opened with TranslateError enabled so that unique
// violations surface as gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// WithTransaction runs fn against a store bound to a single database transaction
func (s *pgStore) WithTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// CreateCredential inserts a new credential row
func (s *pgStore) CreateCredential(ctx context.Context, input CreateCredentialInput) (*schema.Credential, error) {
	credential := schema.Credential{
		CredentialKey: input.CredentialKey,
		OwnerAddress:  input.OwnerAddress,
		Tier:          input.Tier,
		Verified:      input.Verified,
		Expiry:        input.Expiry,
		ContentID:     input.ContentID,
		Transferable:  false,
	}

	if err := s.db.WithContext(ctx).Create(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateCredential
		}
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	return &credential, nil
}

// GetCredentialByKey retrieves a credential by its derived key
func (s *pgStore) GetCredentialByKey(ctx context.Context, key string) (*schema.Credential, error) {
	var credential schema.Credential
	err := s.db.WithContext(ctx).Where("credential_key = ?", key).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return &credential, nil
}

// UpdateCredentialVerified sets the verified flag on a credential
func (s *pgStore) UpdateCredentialVerified(ctx context.Context, key string, verified bool) (*schema.Credential, error) {
	return s.updateCredential(ctx, key, "verified", verified)
}

// UpdateCredentialExpiry sets the expiry timestamp on a credential
func (s *pgStore) UpdateCredentialExpiry(ctx context.Context, key string, expiry int64) (*schema.Credential, error) {
	return s.updateCredential(ctx, key, "expiry", expiry)
}

func (s *pgStore) updateCredential(ctx context.Context, key string, column string, value interface{}) (*schema.Credential, error) {
	var credential schema.Credential
	res := s.db.WithContext(ctx).
		Model(&credential).
		Clauses(clause.Returning{}).
		Where("credential_key = ?", key).
		Update(column, value)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update credential %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCredentialNotFound
	}
	return &credential, nil
}

// GetAccount retrieves the ledger row for an address
func (s *pgStore) GetAccount(ctx context.Context, address string) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// LockAccount takes a SELECT ... FOR UPDATE lock on the ledger row for an
// address, creating the row first if it does not exist yet. Meant to be called
// inside WithTransaction; the lock is held until the transaction ends.
func (s *pgStore) LockAccount(ctx context.Context, address string) (*schema.Account, error) {
	db := s.db.WithContext(ctx)

	var account schema.Account
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ?", address).
		First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	// First touch: create the row, tolerating a concurrent creation, then
	// take the lock on whichever row won.
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&schema.Account{Address: address}).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ?", address).
		First(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &account, nil
}

// CreditBalance adds amount to an address's balance, creating the row if absent
func (s *pgStore) CreditBalance(ctx context.Context, address string, amount uint64) (*schema.Account, error) {
	var account *schema.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &pgStore{db: tx}

		locked, err := txStore.LockAccount(ctx, address)
		if err != nil {
			return err
		}
		// Balances are stored in a BIGINT column, so reject credits that
		// would push past the int64 range before the database does.
		if amount > math.MaxInt64 || locked.Balance > math.MaxInt64-amount {
			return domain.ErrArithmeticOverflow
		}

		newBalance := locked.Balance + amount
		if err := tx.WithContext(ctx).Model(&schema.Account{}).
			Where("address = ?", address).
			Update("balance", newBalance).Error; err != nil {
			return fmt.Errorf("failed to credit account: %w", err)
		}

		locked.Balance = newBalance
		account = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// TransferBalance moves amount from one address to another. The sender row
// must exist; the receiver row is created on first receipt. Callers inside a
// mint transaction hold the sender lock already, so the guarded UPDATE below
// never races with a concurrent debit.
func (s *pgStore) TransferBalance(ctx context.Context, from string, to string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	db := s.db.WithContext(ctx)

	// Debit only when the balance covers the amount; RowsAffected reports
	// whether the guard held.
	res := db.Model(&schema.Account{}).
		Where("address = ? AND balance >= ?", from, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return fmt.Errorf("failed to debit account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":    gorm.Expr("accounts.balance + ?", amount),
			"updated_at": gorm.Expr("now()"),
		}),
	}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&schema.Account{Address: to, Balance: amount}).Error; err != nil {
		return fmt.Errorf("failed to credit receiver: %w", err)
	}
	return nil
}

// IncrementMintNonce advances an address's mint nonce by one
func (s *pgStore) IncrementMintNonce(ctx context.Context, address string) error {
	res := s.db.WithContext(ctx).Model(&schema.Account{}).
		Where("address = ?", address).
		Update("mint_nonce", gorm.Expr("mint_nonce + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to increment mint nonce: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// SetMintNonce pins an address's mint nonce to an explicit value
func (s *pgStore) SetMintNonce(ctx context.Context, address string, nonce uint64) (*schema.Account, error) {
	var account *schema.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &pgStore{db: tx}

		locked, err := txStore.LockAccount(ctx, address)
		if err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Model(&schema.Account{}).
			Where("address = ?", address).
			Update("mint_nonce", nonce).Error; err != nil {
			return fmt.Errorf("failed to set mint nonce: %w", err)
		}

		locked.MintNonce = nonce
		account = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetIssuerConfig retrieves the singleton issuer configuration
func (s *pgStore) GetIssuerConfig(ctx context.Context) (*schema.IssuerConfig, error) {
	var config schema.IssuerConfig
	err := s.db.WithContext(ctx).Where("id = ?", schema.IssuerConfigID).First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get issuer config: %w", err)
	}
	return &config, nil
}

// SeedIssuerConfig inserts the issuer configuration unless one exists already
func (s *pgStore) SeedIssuerConfig(ctx context.Context, input SeedIssuerConfigInput) error {
	config := schema.IssuerConfig{
		ID:                 schema.IssuerConfigID,
		AdminAddress:       input.AdminAddress,
		BeneficiaryAddress: input.BeneficiaryAddress,
		PublicKey:          input.PublicKey,
		FeePerYear:         input.FeePerYear,
		PriceFeedID:        input.PriceFeedID,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&config).Error; err != nil {
		return fmt.Errorf("failed to seed issuer config: %w", err)
	}
	return nil
}

// UpdateIssuerPublicKey rotates the challenge verification key
func (s *pgStore) UpdateIssuerPublicKey(ctx context.Context, publicKey string) (*schema.IssuerConfig, error) {
	return s.updateIssuerConfig(ctx, "public_key", publicKey)
}

// UpdateIssuerFeePerYear sets the fee rate in micro-USD per year
func (s *pgStore) UpdateIssuerFeePerYear(ctx context.Context, feePerYear uint64) (*schema.IssuerConfig, error) {
	return s.updateIssuerConfig(ctx, "fee_per_year", feePerYear)
}

// UpdateIssuerPriceFeedID switches the oracle price feed
func (s *pgStore) UpdateIssuerPriceFeedID(ctx context.Context, priceFeedID string) (*schema.IssuerConfig, error) {
	return s.updateIssuerConfig(ctx, "price_feed_id", priceFeedID)
}

func (s *pgStore) updateIssuerConfig(ctx context.Context, column string, value interface{}) (*schema.IssuerConfig, error) {
	var config schema.IssuerConfig
	res := s.db.WithContext(ctx).
		Model(&config).
		Clauses(clause.Returning{}).
		Where("id = ?", schema.IssuerConfigID).
		Update(column, value)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update issuer %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("issuer config has not been seeded")
	}
	return &config, nil
}

// CreateMintReceipt appends the audit receipt for a successful issuance
func (s *pgStore) CreateMintReceipt(ctx context.Context, input CreateMintReceiptInput) error {
	receipt := schema.MintReceipt{
		ReceiptID:       input.ReceiptID,
		CredentialKey:   input.CredentialKey,
		ReceiverAddress: input.ReceiverAddress,
		FeePaid:         input.FeePaid,
		Nonce:           input.Nonce,
		Payload:         input.Payload,
	}

	if err := s.db.WithContext(ctx).Create(&receipt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCredential
		}
		return fmt.Errorf("failed to create mint receipt: %w", err)
	}
	return nil
}
