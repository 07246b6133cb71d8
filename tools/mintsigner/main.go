// mintsigner is an operator tool for the issuing authority's key holder.
// It generates ed25519 keypairs and signs mint challenges so that the
// resulting signature can be redeemed against POST /api/v1/credentials/mint.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soulbind/kyc-attestor/internal/adapter"
	"github.com/soulbind/kyc-attestor/internal/challenge"
	"github.com/soulbind/kyc-attestor/internal/domain"
)

type Config struct {
	Generate   bool
	PrivateKey string
	Receiver   string
	ContentID  string
	Expiry     int64
	Duration   uint64
	Tier       string
	Nonce      uint64
}

func parseFlags() Config {
	var cfg Config

	flag.BoolVar(&cfg.Generate, "gen", false, "Generate a new ed25519 keypair and exit")
	flag.StringVar(&cfg.PrivateKey, "key", "", "Hex-encoded ed25519 private key or 32-byte seed")
	flag.StringVar(&cfg.Receiver, "receiver", "", "Receiver address (0x-prefixed hex)")
	flag.StringVar(&cfg.ContentID, "content-id", "", "Content identifier bound to the credential")
	flag.Int64Var(&cfg.Expiry, "expiry", 0, "Credential expiry (unix seconds)")
	flag.Uint64Var(&cfg.Duration, "duration", 0, "Paid validity duration in seconds")
	flag.StringVar(&cfg.Tier, "tier", string(domain.TierKYC1), "Credential tier (KYC_1, KYC_2, KYC_3)")
	flag.Uint64Var(&cfg.Nonce, "nonce", 0, "Receiver's current mint nonce (GET /api/v1/identities/{address}/nonce)")
	flag.Parse()

	return cfg
}

func main() {
	cfg := parseFlags()

	if cfg.Generate {
		generateKeypair()
		return
	}

	if cfg.PrivateKey == "" {
		fmt.Println("Error: -key is required (or use -gen to create one)")
		flag.Usage()
		os.Exit(1)
	}

	privateKey, err := decodePrivateKey(cfg.PrivateKey)
	if err != nil {
		fmt.Printf("Error decoding private key: %v\n", err)
		os.Exit(1)
	}

	receiver, ok := domain.NewIdentity(cfg.Receiver)
	if !ok {
		fmt.Printf("Error: %q is not a valid receiver address\n", cfg.Receiver)
		os.Exit(1)
	}
	tier := domain.Tier(cfg.Tier)
	if !tier.IsValid() {
		fmt.Printf("Error: %q is not a valid tier\n", cfg.Tier)
		os.Exit(1)
	}
	if cfg.ContentID == "" {
		fmt.Println("Error: -content-id is required")
		os.Exit(1)
	}
	if cfg.Expiry <= 0 {
		fmt.Println("Error: -expiry must be a positive unix timestamp")
		os.Exit(1)
	}

	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()

	signer, err := challenge.NewSigner(jsonAdapter, jcsAdapter, privateKey)
	if err != nil {
		fmt.Printf("Error creating signer: %v\n", err)
		os.Exit(1)
	}

	params := challenge.MintParams{
		Receiver:  receiver,
		ContentID: cfg.ContentID,
		ExpiresAt: cfg.Expiry,
		Duration:  cfg.Duration,
		Tier:      tier,
	}

	signature, err := signer.Sign(params, cfg.Nonce)
	if err != nil {
		fmt.Printf("Error signing challenge: %v\n", err)
		os.Exit(1)
	}

	canonical, err := challenge.ChallengeBytes(jsonAdapter, jcsAdapter, params, cfg.Nonce)
	if err != nil {
		fmt.Printf("Error building challenge: %v\n", err)
		os.Exit(1)
	}

	publicKey := privateKey.Public().(ed25519.PublicKey)

	fmt.Printf("Challenge:  %s\n", canonical)
	fmt.Printf("Public key: %s\n", hex.EncodeToString(publicKey))
	fmt.Printf("Signature:  %s\n", hex.EncodeToString(signature))
	fmt.Println()
	fmt.Println("Mint request body:")
	fmt.Printf(`{"receiver":%q,"content_id":%q,"expiry":%d,"duration":%d,"tier":%q,"signature":%q}`+"\n",
		receiver.String(), cfg.ContentID, cfg.Expiry, cfg.Duration, tier.String(), hex.EncodeToString(signature))
}

func generateKeypair() {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Printf("Error generating keypair: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Private key: %s\n", hex.EncodeToString(privateKey))
	fmt.Printf("Public key:  %s\n", hex.EncodeToString(publicKey))
	fmt.Println()
	fmt.Println("Keep the private key with the signing service. Configure the public")
	fmt.Println("key as issuer.public_key (or rotate it via PUT /api/v1/admin/issuer/public-key).")
}

// decodePrivateKey accepts either a 64-byte ed25519 private key or a
// 32-byte seed, hex-encoded with an optional 0x prefix
func decodePrivateKey(s string) (ed25519.PrivateKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("not valid hex: %w", err)
	}

	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	default:
		return nil, fmt.Errorf("expected %d-byte seed or %d-byte private key, got %d bytes",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}
