package challenge

import (
	"crypto/ed25519"
	"fmt"

	"github.com/soulbind/kyc-attestor/internal/adapter"
	"github.com/soulbind/kyc-attestor/internal/domain"
)

// MintParams are the caller-supplied parameters bound into a mint challenge
type MintParams struct {
	Receiver  domain.Identity
	ContentID string
	ExpiresAt int64
	Duration  uint64
	Tier      domain.Tier
}

// MintChallenge is the exact structure the issuing authority signs. The wire
// form is RFC 8785 canonical JSON, so struct field order carries no meaning.
type MintChallenge struct {
	Domain    string `json:"domain"`
	Receiver  string `json:"receiver"`
	Nonce     uint64 `json:"nonce"`
	ContentID string `json:"content_id"`
	ExpiresAt int64  `json:"expires_at"`
	Duration  uint64 `json:"duration"`
	Tier      string `json:"tier"`
}

// Verifier checks mint authorization signatures
//
//go:generate mockgen -source=challenge.go -destination=../mocks/challenge.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// Verify checks that signature covers the challenge built from params and
	// nonce under the given ed25519 public key
	Verify(params MintParams, nonce uint64, signature []byte, publicKey []byte) error
}

type verifier struct {
	json adapter.JSON
	jcs  adapter.JCS
}

// NewVerifier creates a challenge verifier
func NewVerifier(json adapter.JSON, jcs adapter.JCS) Verifier {
	return &verifier{
		json: json,
		jcs:  jcs,
	}
}

// Verify checks that signature covers the challenge built from params and
// nonce under the given ed25519 public key
func (v *verifier) Verify(params MintParams, nonce uint64, signature []byte, publicKey []byte) error {
	// Size checks come first so undersized material is reported as malformed
	// rather than as a proof failure.
	if len(signature) != ed25519.SignatureSize {
		return domain.ErrMalformedSignature
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return domain.ErrMalformedSignature
	}

	message, err := ChallengeBytes(v.json, v.jcs, params, nonce)
	if err != nil {
		return err
	}

	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return domain.ErrInvalidProof
	}
	return nil
}

// Signer produces mint authorization signatures. It lives with the issuing
// authority's private key holder; the service itself only ever verifies.
type Signer struct {
	json       adapter.JSON
	jcs        adapter.JCS
	privateKey ed25519.PrivateKey
}

// NewSigner creates a challenge signer for the given ed25519 private key
func NewSigner(json adapter.JSON, jcs adapter.JCS, privateKey ed25519.PrivateKey) (*Signer, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, domain.ErrMalformedSignature
	}
	return &Signer{
		json:       json,
		jcs:        jcs,
		privateKey: privateKey,
	}, nil
}

// Sign produces a signature over the challenge built from params and nonce
func (s *Signer) Sign(params MintParams, nonce uint64) ([]byte, error) {
	message, err := ChallengeBytes(s.json, s.jcs, params, nonce)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(s.privateKey, message), nil
}

// ChallengeBytes builds the canonical byte string both sides sign and verify:
// the challenge struct marshalled to JSON and canonicalized per RFC 8785.
func ChallengeBytes(json adapter.JSON, jcs adapter.JCS, params MintParams, nonce uint64) ([]byte, error) {
	challenge := MintChallenge{
		Domain:    domain.CHALLENGE_DOMAIN_TAG,
		Receiver:  params.Receiver.String(),
		Nonce:     nonce,
		ContentID: params.ContentID,
		ExpiresAt: params.ExpiresAt,
		Duration:  params.Duration,
		Tier:      params.Tier.String(),
	}

	raw, err := json.Marshal(challenge)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mint challenge: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize mint challenge: %w", err)
	}
	return canonical, nil
}
