package oracle

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/soulbind/kyc-attestor/internal/adapter"
	"github.com/soulbind/kyc-attestor/internal/domain"
)

// DefaultBaseURL is the public Hermes endpoint serving Pyth price updates
const DefaultBaseURL = "https://hermes.pyth.network"

// priceUpdateResponse mirrors the Hermes latest-price envelope
type priceUpdateResponse struct {
	Parsed []parsedPriceUpdate `json:"parsed"`
}

type parsedPriceUpdate struct {
	ID    string      `json:"id"`
	Price hermesPrice `json:"price"`
}

type hermesPrice struct {
	Price       string `json:"price"`
	Conf        string `json:"conf"`
	Expo        int32  `json:"expo"`
	PublishTime int64  `json:"publish_time"`
}

// Client defines the interface for price oracle operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/oracle_client.go -package=mocks -mock_names=Client=MockOracleClient
type Client interface {
	// PriceOf fetches the latest quote for a price feed
	PriceOf(ctx context.Context, feedID string) (*domain.PriceQuote, error)
}

// HermesClient implements Client against a Hermes-style price endpoint
type HermesClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
}

// NewClient creates a new Hermes price oracle client
func NewClient(httpClient adapter.HTTPClient, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HermesClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// PriceOf fetches the latest quote for a price feed
func (c *HermesClient) PriceOf(ctx context.Context, feedID string) (*domain.PriceQuote, error) {
	endpoint := fmt.Sprintf("%s/v2/updates/price/latest?ids[]=%s", c.baseURL, url.QueryEscape(feedID))

	var response priceUpdateResponse
	if err := c.httpClient.Get(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to call price oracle: %w", err)
	}

	if len(response.Parsed) == 0 {
		return nil, fmt.Errorf("price oracle returned no update for feed %s", feedID)
	}

	return toQuote(response.Parsed[0].Price)
}

// toQuote validates a raw oracle price and converts it into the fixed-point
// domain representation. Only quotes of the form magnitude * 10^(-e) with a
// strictly positive magnitude and strictly negative exponent are accepted.
func toQuote(price hermesPrice) (*domain.PriceQuote, error) {
	magnitude, err := strconv.ParseInt(price.Price, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse oracle price %q: %w", price.Price, err)
	}
	if magnitude <= 0 {
		return nil, domain.ErrNegativePrice
	}
	if price.Expo >= 0 {
		return nil, domain.ErrPositiveExponent
	}

	return &domain.PriceQuote{
		Magnitude:   uint64(magnitude),
		NegExponent: uint64(-int64(price.Expo)),
		PublishTime: price.PublishTime,
	}, nil
}
