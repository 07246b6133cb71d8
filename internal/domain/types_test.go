package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected Identity
		ok       bool
	}{
		{
			name:     "valid lowercase address",
			address:  "0x67e3ad1902a55074aadd84d9b335105b2d52b813",
			expected: Identity("0x67e3ad1902a55074aadd84d9b335105b2d52b813"),
			ok:       true,
		},
		{
			name:     "valid checksummed address is lowercased",
			address:  "0x67E3ad1902A55074AAdD84d9b335105B2D52b813",
			expected: Identity("0x67e3ad1902a55074aadd84d9b335105b2d52b813"),
			ok:       true,
		},
		{
			name:     "valid address without prefix",
			address:  "67e3ad1902a55074aadd84d9b335105b2d52b813",
			expected: Identity("0x67e3ad1902a55074aadd84d9b335105b2d52b813"),
			ok:       true,
		},
		{
			name:    "invalid empty address",
			address: "",
			ok:      false,
		},
		{
			name:    "invalid short address",
			address: "0x1234",
			ok:      false,
		},
		{
			name:    "invalid non-hex characters",
			address: "0xzz_3ad1902a55074aadd84d9b335105b2d52b813",
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, ok := NewIdentity(tt.address)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, identity)
			}
		})
	}
}

func TestTierIsValid(t *testing.T) {
	tests := []struct {
		name     string
		tier     Tier
		expected bool
	}{
		{name: "kyc level 1", tier: TierKYC1, expected: true},
		{name: "kyc level 2", tier: TierKYC2, expected: true},
		{name: "kyc level 3", tier: TierKYC3, expected: true},
		{name: "empty tier", tier: Tier(""), expected: false},
		{name: "unknown tier", tier: Tier("KYC_9"), expected: false},
		{name: "lowercase tier", tier: Tier("kyc_1"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tier.IsValid())
		})
	}
}

func TestCredentialKeyValid(t *testing.T) {
	tests := []struct {
		name     string
		key      CredentialKey
		expected bool
	}{
		{
			name:     "valid key",
			key:      CredentialKey("0x" + "ab12" + "00000000000000000000000000000000000000000000000000000000" + "cd34"),
			expected: true,
		},
		{
			name:     "missing prefix",
			key:      CredentialKey("ab1200000000000000000000000000000000000000000000000000000000cd34"),
			expected: false,
		},
		{
			name:     "too short",
			key:      CredentialKey("0xab12"),
			expected: false,
		},
		{
			name:     "uppercase hex rejected",
			key:      CredentialKey("0x" + "AB12" + "00000000000000000000000000000000000000000000000000000000" + "CD34"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.key.Valid())
		})
	}
}

func TestCredentialIsValidAt(t *testing.T) {
	expiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		credential Credential
		now        time.Time
		expected   bool
	}{
		{
			name:       "verified and before expiry",
			credential: Credential{Verified: true, Expiry: expiry.Unix()},
			now:        expiry.Add(-time.Hour),
			expected:   true,
		},
		{
			name:       "verified one second before expiry",
			credential: Credential{Verified: true, Expiry: expiry.Unix()},
			now:        expiry.Add(-time.Second),
			expected:   true,
		},
		{
			name:       "verified exactly at expiry",
			credential: Credential{Verified: true, Expiry: expiry.Unix()},
			now:        expiry,
			expected:   false,
		},
		{
			name:       "verified after expiry",
			credential: Credential{Verified: true, Expiry: expiry.Unix()},
			now:        expiry.Add(time.Hour),
			expected:   false,
		},
		{
			name:       "unverified before expiry",
			credential: Credential{Verified: false, Expiry: expiry.Unix()},
			now:        expiry.Add(-time.Hour),
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.credential.IsValidAt(tt.now))
		})
	}
}

func TestCredentialIsValidAtIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	credential := Credential{Verified: true, Expiry: now.Add(24 * time.Hour).Unix()}

	first := credential.IsValidAt(now)
	second := credential.IsValidAt(now)
	assert.Equal(t, first, second)
	assert.True(t, first)
}
