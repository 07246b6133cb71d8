package messaging

import (
	"context"

	"github.com/soulbind/kyc-attestor/internal/domain"
)

// Publisher defines the interface for publishing credential events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishCredentialEvent publishes a credential lifecycle event
	PublishCredentialEvent(ctx context.Context, event *domain.CredentialEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the connection is gone
	CloseChan() <-chan struct{}
}
