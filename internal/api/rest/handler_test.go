package rest_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulbind/kyc-attestor/internal/api/middleware"
	"github.com/soulbind/kyc-attestor/internal/api/rest"
	apierrors "github.com/soulbind/kyc-attestor/internal/api/shared/errors"
	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/issuer"
	"github.com/soulbind/kyc-attestor/internal/logger"
	"github.com/soulbind/kyc-attestor/internal/mocks"
)

const (
	testAdmin    = domain.Identity("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	testReceiver = domain.Identity("0x5aeda56215b167893e80b4fe645ba6d5bab767de")
	testKey      = domain.CredentialKey("0x8f3b2a1c9d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8")

	testExpiry   = int64(1798761600)
	testDuration = uint64(31_536_000)
)

var (
	testJWTKey    *rsa.PrivateKey
	testPublicPEM string
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		panic(err)
	}
	testJWTKey = key
	testPublicPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	m.Run()
}

// fixture wires the full router, including the JWT middleware, over a
// mocked issuing service.
type fixture struct {
	service *mocks.MockService
	router  *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(true, service), middleware.AuthConfig{
		JWTPublicKey: testPublicPEM,
	})

	return &fixture{
		service: service,
		router:  router,
	}
}

// bearerToken mints an RS256 JWT whose subject is the caller address
func bearerToken(t *testing.T, subject string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(testJWTKey)
	require.NoError(t, err)

	return "Bearer " + token
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func testCredential() *domain.Credential {
	return &domain.Credential{
		Key:          testKey,
		Owner:        testReceiver,
		Tier:         domain.TierKYC2,
		Verified:     true,
		Expiry:       testExpiry,
		ContentID:    "ipfs://QmProfile",
		Transferable: false,
	}
}

func mintBody(signature string) string {
	return fmt.Sprintf(
		`{"receiver":%q,"content_id":"ipfs://QmProfile","expiry":%d,"duration":%d,"tier":"KYC_2","signature":%q}`,
		testReceiver.String(), testExpiry, testDuration, signature,
	)
}

func TestHealthCheck(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMint(t *testing.T) {
	f := newFixture(t)

	sigHex := strings.Repeat("ab", 64)
	wantSignature := bytes.Repeat([]byte{0xab}, 64)

	f.service.
		EXPECT().
		Mint(gomock.Any(), testReceiver, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Identity, req domain.MintRequest) (*domain.MintResult, error) {
			assert.Equal(t, testReceiver, req.Receiver)
			assert.Equal(t, "ipfs://QmProfile", req.ContentID)
			assert.Equal(t, testExpiry, req.Expiry)
			assert.Equal(t, testDuration, req.Duration)
			assert.Equal(t, domain.TierKYC2, req.Tier)
			assert.Equal(t, wantSignature, req.Signature)
			return &domain.MintResult{
				CredentialKey: testKey,
				FeePaid:       5_000_000,
				Nonce:         7,
			}, nil
		})

	rec := f.do(http.MethodPost, "/api/v1/credentials/mint", mintBody(sigHex), bearerToken(t, testReceiver.String()))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		CredentialKey string `json:"credential_key"`
		FeePaid       uint64 `json:"fee_paid"`
		Nonce         uint64 `json:"nonce"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testKey.String(), resp.CredentialKey)
	assert.Equal(t, uint64(5_000_000), resp.FeePaid)
	assert.Equal(t, uint64(7), resp.Nonce)
}

func TestMintRequiresAuth(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing header", token: ""},
		{name: "wrong scheme", token: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", token: "Bearer not-a-jwt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/api/v1/credentials/mint", mintBody(strings.Repeat("ab", 64)), tc.token)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, apierrors.ErrCodeUnauthorized, decodeAPIError(t, rec).Code)
		})
	}
}

func TestMintRejectsExpiredToken(t *testing.T) {
	f := newFixture(t)

	claims := jwt.RegisteredClaims{
		Subject:   testReceiver.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(testJWTKey)
	require.NoError(t, err)

	rec := f.do(http.MethodPost, "/api/v1/credentials/mint", mintBody(strings.Repeat("ab", 64)), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMintRejectsNonAddressSubject(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/credentials/mint", mintBody(strings.Repeat("ab", 64)), bearerToken(t, "alice@example.com"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMintInvalidBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/credentials/mint", `{"receiver":`, bearerToken(t, testReceiver.String()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMintValidation(t *testing.T) {
	f := newFixture(t)
	sigHex := strings.Repeat("ab", 64)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing receiver",
			body: fmt.Sprintf(`{"content_id":"ipfs://QmProfile","expiry":%d,"duration":%d,"tier":"KYC_2","signature":%q}`, testExpiry, testDuration, sigHex),
		},
		{
			name: "malformed receiver",
			body: fmt.Sprintf(`{"receiver":"not-an-address","content_id":"ipfs://QmProfile","expiry":%d,"duration":%d,"tier":"KYC_2","signature":%q}`, testExpiry, testDuration, sigHex),
		},
		{
			name: "missing content id",
			body: fmt.Sprintf(`{"receiver":%q,"expiry":%d,"duration":%d,"tier":"KYC_2","signature":%q}`, testReceiver.String(), testExpiry, testDuration, sigHex),
		},
		{
			name: "zero expiry",
			body: fmt.Sprintf(`{"receiver":%q,"content_id":"ipfs://QmProfile","expiry":0,"duration":%d,"tier":"KYC_2","signature":%q}`, testReceiver.String(), testDuration, sigHex),
		},
		{
			name: "unknown tier",
			body: fmt.Sprintf(`{"receiver":%q,"content_id":"ipfs://QmProfile","expiry":%d,"duration":%d,"tier":"KYC_9","signature":%q}`, testReceiver.String(), testExpiry, testDuration, sigHex),
		},
		{
			name: "missing signature",
			body: fmt.Sprintf(`{"receiver":%q,"content_id":"ipfs://QmProfile","expiry":%d,"duration":%d,"tier":"KYC_2"}`, testReceiver.String(), testExpiry, testDuration),
		},
		{
			name: "non-hex signature",
			body: fmt.Sprintf(`{"receiver":%q,"content_id":"ipfs://QmProfile","expiry":%d,"duration":%d,"tier":"KYC_2","signature":"zzzz"}`, testReceiver.String(), testExpiry, testDuration),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/api/v1/credentials/mint", tc.body, bearerToken(t, testReceiver.String()))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeAPIError(t, rec).Code)
		})
	}
}

// TestMintDomainErrors checks that each service failure class maps to its
// REST status and error code.
func TestMintDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{
			name:       "caller is not the receiver",
			err:        domain.ErrUnauthorized,
			wantStatus: http.StatusForbidden,
			wantCode:   apierrors.ErrCodeForbidden,
		},
		{
			name:       "invalid proof",
			err:        fmt.Errorf("challenge verification: %w", domain.ErrInvalidProof),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apierrors.ErrCodeAuthFailed,
		},
		{
			name:       "malformed signature",
			err:        domain.ErrMalformedSignature,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apierrors.ErrCodeAuthFailed,
		},
		{
			name:       "insufficient funds",
			err:        domain.ErrInsufficientFunds,
			wantStatus: http.StatusPaymentRequired,
			wantCode:   apierrors.ErrCodePaymentRequired,
		},
		{
			name:       "duplicate credential",
			err:        domain.ErrDuplicateCredential,
			wantStatus: http.StatusConflict,
			wantCode:   apierrors.ErrCodeConflict,
		},
		{
			name:       "oracle violation",
			err:        fmt.Errorf("feed %s: %w", "deadbeef", domain.ErrNegativePrice),
			wantStatus: http.StatusBadGateway,
			wantCode:   apierrors.ErrCodeUpstreamError,
		},
		{
			name:       "fee overflow",
			err:        domain.ErrArithmeticOverflow,
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeInternalError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.service.
				EXPECT().
				Mint(gomock.Any(), testReceiver, gomock.Any()).
				Return(nil, tc.err)

			rec := f.do(http.MethodPost, "/api/v1/credentials/mint", mintBody(strings.Repeat("ab", 64)), bearerToken(t, testReceiver.String()))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetCredential(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		GetCredentialByIdentity(gomock.Any(), testReceiver).
		Return(testCredential(), nil)

	rec := f.do(http.MethodGet, "/api/v1/credentials/"+testReceiver.String(), "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CredentialKey string `json:"credential_key"`
		Owner         string `json:"owner"`
		Tier          string `json:"tier"`
		Verified      bool   `json:"verified"`
		Transferable  bool   `json:"transferable"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testKey.String(), resp.CredentialKey)
	assert.Equal(t, testReceiver.String(), resp.Owner)
	assert.Equal(t, "KYC_2", resp.Tier)
	assert.True(t, resp.Verified)
	assert.False(t, resp.Transferable)
}

// TestGetCredentialNormalizesAddress checks that a checksum-cased address
// resolves to the same identity as its lowercase form.
func TestGetCredentialNormalizesAddress(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		GetCredentialByIdentity(gomock.Any(), testReceiver).
		Return(testCredential(), nil)

	rec := f.do(http.MethodGet, "/api/v1/credentials/0x5AEDa56215b167893E80B4fE645BA6d5Bab767DE", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCredentialInvalidAddress(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/credentials/not-an-address", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierrors.ErrCodeBadRequest, decodeAPIError(t, rec).Code)
}

func TestGetCredentialNotFound(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		GetCredentialByIdentity(gomock.Any(), testReceiver).
		Return(nil, domain.ErrCredentialNotFound)

	rec := f.do(http.MethodGet, "/api/v1/credentials/"+testReceiver.String(), "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeAPIError(t, rec).Code)
}

func TestGetCredentialByKey(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		GetCredential(gomock.Any(), testKey).
		Return(testCredential(), nil)

	// Uppercase hex in the path must normalize to the stored lowercase key
	rec := f.do(http.MethodGet, "/api/v1/credentials/key/"+strings.ToUpper(testKey.String()[2:]), "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing 0x prefix is rejected")

	rec = f.do(http.MethodGet, "/api/v1/credentials/key/0x"+strings.ToUpper(testKey.String()[2:]), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCredentialByKeyInvalid(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/credentials/key/0x1234", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetValidity(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{name: "valid credential", valid: true},
		{name: "no valid credential", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.service.
				EXPECT().
				IsValid(gomock.Any(), testReceiver).
				Return(tc.valid)

			rec := f.do(http.MethodGet, "/api/v1/credentials/"+testReceiver.String()+"/valid", "", "")

			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Address string `json:"address"`
				Valid   bool   `json:"valid"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, testReceiver.String(), resp.Address)
			assert.Equal(t, tc.valid, resp.Valid)
		})
	}
}

func TestGetFeeQuote(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		RequiredFee(gomock.Any(), testDuration).
		Return(&issuer.FeeQuote{
			Duration: testDuration,
			Fee:      5_000_000,
			Price:    &domain.PriceQuote{Magnitude: 1_000_000_000, NegExponent: 8, PublishTime: 1767225600},
		}, nil)

	rec := f.do(http.MethodGet, fmt.Sprintf("/api/v1/fees/quote?duration=%d", testDuration), "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Duration uint64 `json:"duration"`
		Fee      uint64 `json:"fee"`
		Price    *struct {
			Magnitude   uint64 `json:"magnitude"`
			NegExponent uint64 `json:"neg_exponent"`
		} `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testDuration, resp.Duration)
	assert.Equal(t, uint64(5_000_000), resp.Fee)
	require.NotNil(t, resp.Price)
	assert.Equal(t, uint64(1_000_000_000), resp.Price.Magnitude)
	assert.Equal(t, uint64(8), resp.Price.NegExponent)
}

// TestGetFeeQuoteZeroDuration checks that a free quote omits the price
// entirely, since the oracle was never consulted.
func TestGetFeeQuoteZeroDuration(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		RequiredFee(gomock.Any(), uint64(0)).
		Return(&issuer.FeeQuote{Duration: 0, Fee: 0}, nil)

	rec := f.do(http.MethodGet, "/api/v1/fees/quote?duration=0", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, hasPrice := resp["price"]
	assert.False(t, hasPrice)
}

func TestGetFeeQuoteBadDuration(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: "/api/v1/fees/quote"},
		{name: "non numeric", path: "/api/v1/fees/quote?duration=forever"},
		{name: "negative", path: "/api/v1/fees/quote?duration=-5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(http.MethodGet, tc.path, "", "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetFeeQuoteOracleError(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		RequiredFee(gomock.Any(), testDuration).
		Return(nil, fmt.Errorf("feed deadbeef: %w", domain.ErrPositiveExponent))

	rec := f.do(http.MethodGet, fmt.Sprintf("/api/v1/fees/quote?duration=%d", testDuration), "", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apierrors.ErrCodeUpstreamError, decodeAPIError(t, rec).Code)
}

func TestGetNonce(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		GetMintNonce(gomock.Any(), testReceiver).
		Return(uint64(5), nil)

	rec := f.do(http.MethodGet, "/api/v1/identities/"+testReceiver.String()+"/nonce", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Address   string `json:"address"`
		MintNonce uint64 `json:"mint_nonce"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testReceiver.String(), resp.Address)
	assert.Equal(t, uint64(5), resp.MintNonce)
}

func TestGetAccount(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		GetAccount(gomock.Any(), testReceiver).
		Return(&domain.Account{Address: testReceiver, MintNonce: 3, Balance: 10_000_000}, nil)

	rec := f.do(http.MethodGet, "/api/v1/accounts/"+testReceiver.String(), "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Address   string `json:"address"`
		MintNonce uint64 `json:"mint_nonce"`
		Balance   uint64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testReceiver.String(), resp.Address)
	assert.Equal(t, uint64(3), resp.MintNonce)
	assert.Equal(t, uint64(10_000_000), resp.Balance)
}

func TestGetIssuer(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		GetIssuerConfig(gomock.Any()).
		Return(&domain.IssuerConfig{
			AdminAddress:       testAdmin,
			BeneficiaryAddress: "0x2bd72d16c81b48cb571b35bf4a9d5a0c4895b875",
			PublicKey:          strings.Repeat("aa", 32),
			FeePerYear:         500000,
			PriceFeedID:        "e62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43",
		}, nil)

	rec := f.do(http.MethodGet, "/api/v1/issuer", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testAdmin.String())
	assert.Contains(t, rec.Body.String(), `"fee_per_year":500000`)
}

// TestAdminRoutesRequireAuth walks every admin route without a token.
func TestAdminRoutesRequireAuth(t *testing.T) {
	f := newFixture(t)
	addr := testReceiver.String()

	routes := []struct {
		method string
		path   string
	}{
		{method: http.MethodPut, path: "/api/v1/admin/issuer/public-key"},
		{method: http.MethodPut, path: "/api/v1/admin/issuer/fee-rate"},
		{method: http.MethodPut, path: "/api/v1/admin/issuer/price-feed"},
		{method: http.MethodPut, path: "/api/v1/admin/credentials/" + addr + "/verified"},
		{method: http.MethodPut, path: "/api/v1/admin/credentials/" + addr + "/expiry"},
		{method: http.MethodPost, path: "/api/v1/admin/accounts/" + addr + "/credit"},
		{method: http.MethodPost, path: "/api/v1/admin/identities/" + addr + "/nonce"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := f.do(route.method, route.path, "{}", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestSetPublicKey(t *testing.T) {
	f := newFixture(t)
	keyHex := strings.Repeat("cd", 32)

	f.service.
		EXPECT().
		SetPublicKey(gomock.Any(), testAdmin, keyHex).
		Return(&domain.IssuerConfig{AdminAddress: testAdmin, PublicKey: keyHex}, nil)

	rec := f.do(http.MethodPut, "/api/v1/admin/issuer/public-key",
		fmt.Sprintf(`{"public_key":%q}`, keyHex), bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), keyHex)
}

func TestSetPublicKeyValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing", body: `{}`},
		{name: "non hex", body: `{"public_key":"zzzz"}`},
		{name: "wrong size", body: `{"public_key":"abcd"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(http.MethodPut, "/api/v1/admin/issuer/public-key", tc.body, bearerToken(t, testAdmin.String()))
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestSetPublicKeyForbiddenForNonAdmin(t *testing.T) {
	f := newFixture(t)
	keyHex := strings.Repeat("cd", 32)

	f.service.
		EXPECT().
		SetPublicKey(gomock.Any(), testReceiver, keyHex).
		Return(nil, domain.ErrUnauthorized)

	rec := f.do(http.MethodPut, "/api/v1/admin/issuer/public-key",
		fmt.Sprintf(`{"public_key":%q}`, keyHex), bearerToken(t, testReceiver.String()))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apierrors.ErrCodeForbidden, decodeAPIError(t, rec).Code)
}

func TestSetFeeRate(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		SetFeeRate(gomock.Any(), testAdmin, uint64(750000)).
		Return(&domain.IssuerConfig{AdminAddress: testAdmin, FeePerYear: 750000}, nil)

	rec := f.do(http.MethodPut, "/api/v1/admin/issuer/fee-rate",
		`{"fee_per_year":750000}`, bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fee_per_year":750000`)
}

func TestSetPriceFeed(t *testing.T) {
	f := newFixture(t)
	feedID := "ff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace"

	f.service.
		EXPECT().
		SetPriceFeed(gomock.Any(), testAdmin, feedID).
		Return(&domain.IssuerConfig{AdminAddress: testAdmin, PriceFeedID: feedID}, nil)

	rec := f.do(http.MethodPut, "/api/v1/admin/issuer/price-feed",
		fmt.Sprintf(`{"price_feed_id":%q}`, feedID), bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetPriceFeedValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/admin/issuer/price-feed", `{}`, bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// TestSetPriceFeedProductionFormat checks that outside debug mode the feed
// identifier must be 32-byte hex. Debug deployments may point at arbitrary
// mock feed labels.
func TestSetPriceFeedProductionFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(false, service), middleware.AuthConfig{
		JWTPublicKey: testPublicPEM,
	})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/issuer/price-feed",
		strings.NewReader(`{"price_feed_id":"local-mock-feed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, testAdmin.String()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetVerified(t *testing.T) {
	f := newFixture(t)

	revoked := testCredential()
	revoked.Verified = false

	f.service.
		EXPECT().
		SetVerified(gomock.Any(), testAdmin, testReceiver, false).
		Return(revoked, nil)

	rec := f.do(http.MethodPut, "/api/v1/admin/credentials/"+testReceiver.String()+"/verified",
		`{"verified":false}`, bearerToken(t, testAdmin.String()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"verified":false`)
}

// TestSetVerifiedRequiresExplicitFlag checks that an empty body is rejected
// rather than read as verified=false.
func TestSetVerifiedRequiresExplicitFlag(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/admin/credentials/"+testReceiver.String()+"/verified",
		`{}`, bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetVerifiedNotFound(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		SetVerified(gomock.Any(), testAdmin, testReceiver, true).
		Return(nil, domain.ErrCredentialNotFound)

	rec := f.do(http.MethodPut, "/api/v1/admin/credentials/"+testReceiver.String()+"/verified",
		`{"verified":true}`, bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetExpiry(t *testing.T) {
	f := newFixture(t)

	extended := testCredential()
	extended.Expiry = testExpiry + 31_536_000

	f.service.
		EXPECT().
		SetExpiry(gomock.Any(), testAdmin, testReceiver, testExpiry+31_536_000).
		Return(extended, nil)

	rec := f.do(http.MethodPut, "/api/v1/admin/credentials/"+testReceiver.String()+"/expiry",
		fmt.Sprintf(`{"expiry":%d}`, testExpiry+31_536_000), bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetExpiryValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/admin/credentials/"+testReceiver.String()+"/expiry",
		`{"expiry":0}`, bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreditAccount(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		CreditAccount(gomock.Any(), testAdmin, testReceiver, uint64(10_000_000)).
		Return(&domain.Account{Address: testReceiver, Balance: 10_000_000}, nil)

	rec := f.do(http.MethodPost, "/api/v1/admin/accounts/"+testReceiver.String()+"/credit",
		`{"amount":10000000}`, bearerToken(t, testAdmin.String()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":10000000`)
}

func TestCreditAccountValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/admin/accounts/"+testReceiver.String()+"/credit",
		`{"amount":0}`, bearerToken(t, testAdmin.String()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBumpNonce(t *testing.T) {
	f := newFixture(t)
	f.service.
		EXPECT().
		BumpNonce(gomock.Any(), testAdmin, testReceiver).
		Return(&domain.Account{Address: testReceiver, MintNonce: 6}, nil)

	rec := f.do(http.MethodPost, "/api/v1/admin/identities/"+testReceiver.String()+"/nonce",
		"", bearerToken(t, testAdmin.String()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mint_nonce":6`)
}
