package domain

const (
	// Challenge constants
	CHALLENGE_DOMAIN_TAG = "kyc-attestor:mint:v1"

	// Credential key derivation constants
	CREDENTIAL_NAMESPACE        = "kyc-attestor:credential:v1"
	CREDENTIAL_COLLISION_DOMAIN = "soulbound-kyc"
)
