package fee

import (
	"math/bits"

	"github.com/soulbind/kyc-attestor/internal/domain"
)

const (
	// SecondsPerYear is the duration unit the annual fee rate is quoted over (365 days)
	SecondsPerYear = 31_536_000
	// ScaleFactor is the micro-USD fixed point used by the fee rate
	ScaleFactor = 1_000_000
	// BaseUnitPerAsset is the number of base units in one whole fee asset
	BaseUnitPerAsset = 100_000_000
)

// RequiredFee computes the issuance fee in base units of the fee asset for
// the given validity duration, annual rate and oracle quote.
//
// The computation is integer-only with 128-bit intermediates:
//
//	costUSD           = durationSeconds * annualFeeUSD / SecondsPerYear
//	assetPerUSDScaled = BaseUnitPerAsset * 10^NegExponent / Magnitude
//	fee               = costUSD * assetPerUSDScaled / ScaleFactor
//
// Each division truncates. Any intermediate that does not fit in a uint64
// fails with domain.ErrArithmeticOverflow rather than wrapping.
func RequiredFee(durationSeconds uint64, annualFeeUSD uint64, quote domain.PriceQuote) (uint64, error) {
	if durationSeconds == 0 {
		return 0, nil
	}
	if quote.Magnitude == 0 {
		return 0, domain.ErrNegativePrice
	}

	costUSD, err := mulDiv(durationSeconds, annualFeeUSD, SecondsPerYear)
	if err != nil {
		return 0, err
	}

	scale, err := pow10(quote.NegExponent)
	if err != nil {
		return 0, err
	}

	assetPerUSDScaled, err := mulDiv(BaseUnitPerAsset, scale, quote.Magnitude)
	if err != nil {
		return 0, err
	}

	return mulDiv(costUSD, assetPerUSDScaled, ScaleFactor)
}

// mulDiv returns a*b/d using a 128-bit intermediate product
func mulDiv(a, b, d uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		// bits.Div64 panics when the quotient does not fit in 64 bits
		return 0, domain.ErrArithmeticOverflow
	}
	q, _ := bits.Div64(hi, lo, d)
	return q, nil
}

// pow10 returns 10^n, failing once the result leaves the uint64 range
func pow10(n uint64) (uint64, error) {
	if n > 19 {
		return 0, domain.ErrArithmeticOverflow
	}
	result := uint64(1)
	for range n {
		result *= 10
	}
	return result, nil
}
