package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulbind/kyc-attestor/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// testAddress builds a deterministic lowercase hex address from a suffix
func testAddress(n int) string {
	return fmt.Sprintf("0x%040x", n)
}

// testCredentialKey builds a well-formed derived key from a suffix
func testCredentialKey(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

// buildTestCredential creates a test credential input
func buildTestCredential(n int, expiry int64) CreateCredentialInput {
	return CreateCredentialInput{
		CredentialKey: testCredentialKey(n),
		OwnerAddress:  testAddress(n),
		Tier:          string(domain.TierKYC1),
		Verified:      true,
		Expiry:        expiry,
		ContentID:     fmt.Sprintf("ipfs://QmEvidence%d", n),
	}
}

// buildTestIssuerSeed creates a test issuer configuration seed
func buildTestIssuerSeed() SeedIssuerConfigInput {
	return SeedIssuerConfigInput{
		AdminAddress:       testAddress(9001),
		BeneficiaryAddress: testAddress(9002),
		PublicKey:          "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		FeePerYear:         500000,
		PriceFeedID:        "e62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43",
	}
}

// =============================================================================
// Test: Credentials
// =============================================================================

func testCreateCredential(t *testing.T, s Store) {
	ctx := context.Background()
	expiry := time.Now().Add(365 * 24 * time.Hour).Unix()

	t.Run("successful create persists all columns", func(t *testing.T) {
		input := buildTestCredential(1, expiry)

		created, err := s.CreateCredential(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, input.CredentialKey, created.CredentialKey)
		assert.Equal(t, input.OwnerAddress, created.OwnerAddress)
		assert.Equal(t, input.Tier, created.Tier)
		assert.True(t, created.Verified)
		assert.Equal(t, expiry, created.Expiry)
		assert.Equal(t, input.ContentID, created.ContentID)
		assert.False(t, created.Transferable)
		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("duplicate key is rejected", func(t *testing.T) {
		input := buildTestCredential(2, expiry)

		_, err := s.CreateCredential(ctx, input)
		require.NoError(t, err)

		// Same key, different owner
		dup := input
		dup.OwnerAddress = testAddress(20002)
		_, err = s.CreateCredential(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateCredential)
	})

	t.Run("duplicate owner is rejected", func(t *testing.T) {
		input := buildTestCredential(3, expiry)

		_, err := s.CreateCredential(ctx, input)
		require.NoError(t, err)

		// Different key, same owner
		dup := input
		dup.CredentialKey = testCredentialKey(30003)
		_, err = s.CreateCredential(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateCredential)
	})
}

func testGetCredentialByKey(t *testing.T, s Store) {
	ctx := context.Background()
	expiry := time.Now().Add(30 * 24 * time.Hour).Unix()

	t.Run("get existing credential", func(t *testing.T) {
		input := buildTestCredential(10, expiry)
		_, err := s.CreateCredential(ctx, input)
		require.NoError(t, err)

		got, err := s.GetCredentialByKey(ctx, input.CredentialKey)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, input.OwnerAddress, got.OwnerAddress)
		assert.Equal(t, input.Tier, got.Tier)
	})

	t.Run("get non-existent credential returns nil", func(t *testing.T) {
		got, err := s.GetCredentialByKey(ctx, testCredentialKey(99999))
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testUpdateCredential(t *testing.T, s Store) {
	ctx := context.Background()
	expiry := time.Now().Add(90 * 24 * time.Hour).Unix()

	t.Run("update verified flag", func(t *testing.T) {
		input := buildTestCredential(20, expiry)
		_, err := s.CreateCredential(ctx, input)
		require.NoError(t, err)

		updated, err := s.UpdateCredentialVerified(ctx, input.CredentialKey, false)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.Verified)

		// The rest of the row is untouched
		assert.Equal(t, input.OwnerAddress, updated.OwnerAddress)
		assert.Equal(t, expiry, updated.Expiry)
		assert.False(t, updated.Transferable)

		updated, err = s.UpdateCredentialVerified(ctx, input.CredentialKey, true)
		require.NoError(t, err)
		assert.True(t, updated.Verified)
	})

	t.Run("update expiry", func(t *testing.T) {
		input := buildTestCredential(21, expiry)
		_, err := s.CreateCredential(ctx, input)
		require.NoError(t, err)

		newExpiry := expiry + 31_536_000
		updated, err := s.UpdateCredentialExpiry(ctx, input.CredentialKey, newExpiry)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, newExpiry, updated.Expiry)

		got, err := s.GetCredentialByKey(ctx, input.CredentialKey)
		require.NoError(t, err)
		assert.Equal(t, newExpiry, got.Expiry)
	})

	t.Run("update non-existent credential fails", func(t *testing.T) {
		_, err := s.UpdateCredentialVerified(ctx, testCredentialKey(88888), false)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCredentialNotFound)

		_, err = s.UpdateCredentialExpiry(ctx, testCredentialKey(88888), expiry)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
	})
}

// =============================================================================
// Test: Accounts
// =============================================================================

func testAccounts(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("get non-existent account returns nil", func(t *testing.T) {
		got, err := s.GetAccount(ctx, testAddress(100))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("lock creates the row lazily with zero state", func(t *testing.T) {
		addr := testAddress(101)

		locked, err := s.LockAccount(ctx, addr)
		require.NoError(t, err)
		require.NotNil(t, locked)
		assert.Equal(t, addr, locked.Address)
		assert.Zero(t, locked.MintNonce)
		assert.Zero(t, locked.Balance)

		// The row is now visible to plain reads
		got, err := s.GetAccount(ctx, addr)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, addr, got.Address)
	})

	t.Run("lock existing account returns current state", func(t *testing.T) {
		addr := testAddress(102)
		_, err := s.CreditBalance(ctx, addr, 1234)
		require.NoError(t, err)

		locked, err := s.LockAccount(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(1234), locked.Balance)
	})
}

func testCreditBalance(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("credit creates account on first touch", func(t *testing.T) {
		addr := testAddress(110)

		account, err := s.CreditBalance(ctx, addr, 5_000_000)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, uint64(5_000_000), account.Balance)
		assert.Zero(t, account.MintNonce)
	})

	t.Run("credit accumulates", func(t *testing.T) {
		addr := testAddress(111)

		_, err := s.CreditBalance(ctx, addr, 100)
		require.NoError(t, err)
		account, err := s.CreditBalance(ctx, addr, 250)
		require.NoError(t, err)
		assert.Equal(t, uint64(350), account.Balance)
	})

	t.Run("credit past the storage bound is rejected", func(t *testing.T) {
		addr := testAddress(112)

		_, err := s.CreditBalance(ctx, addr, math.MaxInt64-10)
		require.NoError(t, err)

		_, err = s.CreditBalance(ctx, addr, 11)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)

		// Balance unchanged after the failed credit
		account, err := s.GetAccount(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt64-10), account.Balance)
	})
}

func testTransferBalance(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("transfer debits sender and credits receiver", func(t *testing.T) {
		from := testAddress(120)
		to := testAddress(121)
		_, err := s.CreditBalance(ctx, from, 1000)
		require.NoError(t, err)

		err = s.TransferBalance(ctx, from, to, 400)
		require.NoError(t, err)

		sender, err := s.GetAccount(ctx, from)
		require.NoError(t, err)
		assert.Equal(t, uint64(600), sender.Balance)

		receiver, err := s.GetAccount(ctx, to)
		require.NoError(t, err)
		require.NotNil(t, receiver)
		assert.Equal(t, uint64(400), receiver.Balance)
	})

	t.Run("transfer accumulates on existing receiver", func(t *testing.T) {
		from := testAddress(122)
		to := testAddress(123)
		_, err := s.CreditBalance(ctx, from, 1000)
		require.NoError(t, err)
		_, err = s.CreditBalance(ctx, to, 50)
		require.NoError(t, err)

		err = s.TransferBalance(ctx, from, to, 100)
		require.NoError(t, err)

		receiver, err := s.GetAccount(ctx, to)
		require.NoError(t, err)
		assert.Equal(t, uint64(150), receiver.Balance)
	})

	t.Run("insufficient funds leaves both sides untouched", func(t *testing.T) {
		from := testAddress(124)
		to := testAddress(125)
		_, err := s.CreditBalance(ctx, from, 99)
		require.NoError(t, err)

		err = s.TransferBalance(ctx, from, to, 100)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		sender, err := s.GetAccount(ctx, from)
		require.NoError(t, err)
		assert.Equal(t, uint64(99), sender.Balance)

		receiver, err := s.GetAccount(ctx, to)
		require.NoError(t, err)
		assert.Nil(t, receiver)
	})

	t.Run("missing sender is insufficient funds", func(t *testing.T) {
		err := s.TransferBalance(ctx, testAddress(126), testAddress(127), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("zero amount is a no-op", func(t *testing.T) {
		from := testAddress(128)
		to := testAddress(129)

		err := s.TransferBalance(ctx, from, to, 0)
		require.NoError(t, err)

		receiver, err := s.GetAccount(ctx, to)
		require.NoError(t, err)
		assert.Nil(t, receiver)
	})
}

func testMintNonce(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("increment advances by one", func(t *testing.T) {
		addr := testAddress(130)
		_, err := s.LockAccount(ctx, addr)
		require.NoError(t, err)

		require.NoError(t, s.IncrementMintNonce(ctx, addr))
		require.NoError(t, s.IncrementMintNonce(ctx, addr))

		account, err := s.GetAccount(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), account.MintNonce)
	})

	t.Run("increment on missing account fails", func(t *testing.T) {
		err := s.IncrementMintNonce(ctx, testAddress(131))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("set pins the nonce, creating the account if needed", func(t *testing.T) {
		addr := testAddress(132)

		account, err := s.SetMintNonce(ctx, addr, 7)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, uint64(7), account.MintNonce)

		got, err := s.GetAccount(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got.MintNonce)
	})
}

// =============================================================================
// Test: Issuer Config
// =============================================================================

func testIssuerConfig(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("get before seed returns nil", func(t *testing.T) {
		got, err := s.GetIssuerConfig(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update before seed fails", func(t *testing.T) {
		_, err := s.UpdateIssuerFeePerYear(ctx, 100)
		require.Error(t, err)
	})

	t.Run("seed then read back", func(t *testing.T) {
		seed := buildTestIssuerSeed()
		require.NoError(t, s.SeedIssuerConfig(ctx, seed))

		got, err := s.GetIssuerConfig(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, seed.AdminAddress, got.AdminAddress)
		assert.Equal(t, seed.BeneficiaryAddress, got.BeneficiaryAddress)
		assert.Equal(t, seed.PublicKey, got.PublicKey)
		assert.Equal(t, seed.FeePerYear, got.FeePerYear)
		assert.Equal(t, seed.PriceFeedID, got.PriceFeedID)
	})

	t.Run("second seed is a no-op", func(t *testing.T) {
		second := buildTestIssuerSeed()
		second.FeePerYear = 999999
		require.NoError(t, s.SeedIssuerConfig(ctx, second))

		got, err := s.GetIssuerConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(500000), got.FeePerYear)
	})

	t.Run("update public key", func(t *testing.T) {
		newKey := "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c"
		updated, err := s.UpdateIssuerPublicKey(ctx, newKey)
		require.NoError(t, err)
		assert.Equal(t, newKey, updated.PublicKey)
	})

	t.Run("update fee per year", func(t *testing.T) {
		updated, err := s.UpdateIssuerFeePerYear(ctx, 750000)
		require.NoError(t, err)
		assert.Equal(t, uint64(750000), updated.FeePerYear)

		// Other columns survive the update
		assert.Equal(t, buildTestIssuerSeed().AdminAddress, updated.AdminAddress)
	})

	t.Run("update price feed id", func(t *testing.T) {
		newFeed := "ff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace"
		updated, err := s.UpdateIssuerPriceFeedID(ctx, newFeed)
		require.NoError(t, err)
		assert.Equal(t, newFeed, updated.PriceFeedID)
	})
}

// =============================================================================
// Test: Mint Receipts
// =============================================================================

func testMintReceipts(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create receipt with payload", func(t *testing.T) {
		payload, err := json.Marshal(map[string]interface{}{
			"nonce":    0,
			"tier":     "KYC_1",
			"fee_paid": 5_000_000,
		})
		require.NoError(t, err)

		err = s.CreateMintReceipt(ctx, CreateMintReceiptInput{
			ReceiptID:       "01JABCDEF0123456789ABCDEFG",
			CredentialKey:   testCredentialKey(200),
			ReceiverAddress: testAddress(200),
			FeePaid:         5_000_000,
			Nonce:           0,
			Payload:         payload,
		})
		require.NoError(t, err)
	})

	t.Run("second receipt for the same credential is rejected", func(t *testing.T) {
		input := CreateMintReceiptInput{
			ReceiptID:       "01JABCDEF0123456789ABCDEH1",
			CredentialKey:   testCredentialKey(201),
			ReceiverAddress: testAddress(201),
			FeePaid:         0,
			Nonce:           0,
		}
		require.NoError(t, s.CreateMintReceipt(ctx, input))

		input.ReceiptID = "01JABCDEF0123456789ABCDEH2"
		err := s.CreateMintReceipt(ctx, input)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateCredential)
	})
}

// =============================================================================
// Test: Transactions
// =============================================================================

func testWithTransaction(t *testing.T, s Store) {
	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour).Unix()

	t.Run("commit on success", func(t *testing.T) {
		input := buildTestCredential(300, expiry)

		err := s.WithTransaction(ctx, func(tx Store) error {
			if _, err := tx.LockAccount(ctx, input.OwnerAddress); err != nil {
				return err
			}
			if _, err := tx.CreateCredential(ctx, input); err != nil {
				return err
			}
			return tx.IncrementMintNonce(ctx, input.OwnerAddress)
		})
		require.NoError(t, err)

		got, err := s.GetCredentialByKey(ctx, input.CredentialKey)
		require.NoError(t, err)
		require.NotNil(t, got)

		account, err := s.GetAccount(ctx, input.OwnerAddress)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.MintNonce)
	})

	t.Run("rollback on error", func(t *testing.T) {
		input := buildTestCredential(301, expiry)
		boom := fmt.Errorf("boom")

		err := s.WithTransaction(ctx, func(tx Store) error {
			if _, err := tx.CreateCredential(ctx, input); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := s.GetCredentialByKey(ctx, input.CredentialKey)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("mint-shaped transaction is all or nothing", func(t *testing.T) {
		receiver := testAddress(302)
		beneficiary := testAddress(303)
		input := buildTestCredential(302, expiry)

		_, err := s.CreditBalance(ctx, receiver, 10_000_000)
		require.NoError(t, err)

		// The debit succeeds, then the duplicate credential aborts everything
		_, err = s.CreateCredential(ctx, input)
		require.NoError(t, err)

		err = s.WithTransaction(ctx, func(tx Store) error {
			if _, err := tx.LockAccount(ctx, receiver); err != nil {
				return err
			}
			if err := tx.TransferBalance(ctx, receiver, beneficiary, 5_000_000); err != nil {
				return err
			}
			if _, err := tx.CreateCredential(ctx, input); err != nil {
				return err
			}
			return tx.IncrementMintNonce(ctx, receiver)
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateCredential)

		// Balance was not debited
		account, err := s.GetAccount(ctx, receiver)
		require.NoError(t, err)
		assert.Equal(t, uint64(10_000_000), account.Balance)

		// Beneficiary never saw the funds
		b, err := s.GetAccount(ctx, beneficiary)
		require.NoError(t, err)
		assert.Nil(t, b)
	})
}

// =============================================================================
// Suite Runner
// =============================================================================

// RunStoreTests runs the complete store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateCredential", testCreateCredential},
		{"GetCredentialByKey", testGetCredentialByKey},
		{"UpdateCredential", testUpdateCredential},
		{"Accounts", testAccounts},
		{"CreditBalance", testCreditBalance},
		{"TransferBalance", testTransferBalance},
		{"MintNonce", testMintNonce},
		{"IssuerConfig", testIssuerConfig},
		{"MintReceipts", testMintReceipts},
		{"WithTransaction", testWithTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
