package domain

import "errors"

var (
	// ErrUnauthorized is returned when the caller does not match the required identity
	ErrUnauthorized = errors.New("caller is not authorized")

	// ErrMalformedSignature is returned when signature bytes cannot be interpreted
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrInvalidProof is returned when the authority signature does not verify
	ErrInvalidProof = errors.New("invalid authorization proof")

	// ErrNegativePrice is returned when the oracle reports a non-positive price
	ErrNegativePrice = errors.New("oracle price magnitude is not positive")

	// ErrPositiveExponent is returned when the oracle reports a non-negative exponent
	ErrPositiveExponent = errors.New("oracle price exponent is not negative")

	// ErrArithmeticOverflow is returned when fee computation exceeds 64-bit range
	ErrArithmeticOverflow = errors.New("fee arithmetic overflow")

	// ErrDuplicateCredential is returned when the identity already holds a credential
	ErrDuplicateCredential = errors.New("credential already exists")

	// ErrCredentialNotFound is returned when no credential exists for a key or identity
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrAccountNotFound is returned when no ledger account exists for an identity
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when an account cannot cover a fee debit
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// IsAuthFailure reports whether err is a challenge authorization failure,
// covering both malformed signature bytes and a failed proof
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrMalformedSignature) || errors.Is(err, ErrInvalidProof)
}

// IsOracleError reports whether err is a price feed sign/exponent violation
func IsOracleError(err error) bool {
	return errors.Is(err, ErrNegativePrice) || errors.Is(err, ErrPositiveExponent)
}
