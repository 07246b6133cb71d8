package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// CredentialEventType represents the type of credential lifecycle event
type CredentialEventType string

const (
	EventTypeMinted   CredentialEventType = "minted"
	EventTypeVerified CredentialEventType = "verified_changed"
	EventTypeExpiry   CredentialEventType = "expiry_changed"
)

// CredentialEvent represents a credential lifecycle event.
// This is the standard format published to NATS after a state commit.
type CredentialEvent struct {
	ID            string              `json:"id"` // ULID, sortable by emission time
	Type          CredentialEventType `json:"type"`
	Receiver      Identity            `json:"receiver"`
	CredentialKey CredentialKey       `json:"credential_key"`
	Tier          Tier                `json:"tier,omitempty"`
	Expiry        int64               `json:"expiry,omitempty"`
	Duration      uint64              `json:"duration,omitempty"`
	FeePaid       uint64              `json:"fee_paid,omitempty"`
	Nonce         uint64              `json:"nonce,omitempty"`
	Verified      *bool               `json:"verified,omitempty"`
	Timestamp     time.Time           `json:"timestamp"`
}

// NewEventID generates a ULID event identifier anchored at the given time
func NewEventID(now time.Time) string {
	return ulid.MustNewDefault(now).String()
}
