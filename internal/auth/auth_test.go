package auth

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret:     testSecret,
		Issuer:     "smartlife-api",
		Audience:   "smartlife-client",
		BcryptCost: bcrypt.MinCost,
	}, opts...)
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewService(Config{})
		assert.Error(t, err)
	})

	t.Run("cost out of range", func(t *testing.T) {
		_, err := NewService(Config{Secret: testSecret, BcryptCost: bcrypt.MaxCost + 1})
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		svc, err := NewService(Config{Secret: testSecret})
		require.NoError(t, err)
		assert.Equal(t, DefaultTokenTTL, svc.TTL())
		assert.Equal(t, bcrypt.DefaultCost, svc.cost)
	})
}

func TestHashPassword(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.HashPassword("Sup3r$ecretPass")
	require.NoError(t, err)
	second, err := svc.HashPassword("Sup3r$ecretPass")
	require.NoError(t, err)

	assert.NotEqual(t, "Sup3r$ecretPass", first)
	assert.NotEqual(t, first, second, "salts must differ between hashes")
}

func TestVerifyPassword(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		stored   string
		attempt  string
		expected bool
	}{
		{name: "matching", stored: "correct horse", attempt: "correct horse", expected: true},
		{name: "different", stored: "correct horse", attempt: "battery staple", expected: false},
		{name: "prefix", stored: "correct horse", attempt: "correct", expected: false},
		{name: "empty attempt", stored: "correct horse", attempt: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := svc.HashPassword(tt.stored)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, svc.VerifyPassword(tt.attempt, hash))
		})
	}

	t.Run("garbage hash", func(t *testing.T) {
		assert.False(t, svc.VerifyPassword("anything", "not-a-bcrypt-hash"))
	})
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestIssueAndVerifyToken_IDAboveUint32(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("uint is 32 bits on this platform")
	}
	svc := newTestService(t)
	var id uint = math.MaxUint32
	id++

	token, err := svc.IssueToken(id)
	require.NoError(t, err)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, userID)
}

func TestIssueToken_ClaimsCarry24hExpiry(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, WithClock(func() time.Time { return issued }))

	token, err := svc.IssueToken(7)
	require.NoError(t, err)

	var claims jwt.RegisteredClaims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)

	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, issued.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyToken_Expired(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	svc := newTestService(t, WithClock(func() time.Time { return now }))

	token, err := svc.IssueToken(7)
	require.NoError(t, err)

	now = issued.Add(23 * time.Hour)
	_, err = svc.VerifyToken(token)
	assert.NoError(t, err, "token should still be valid before 24h")

	now = issued.Add(25 * time.Hour)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_Invalid(t *testing.T) {
	svc := newTestService(t)
	valid, err := svc.IssueToken(9)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	other, err := NewService(Config{Secret: "another-secret-another-secret-0000", Issuer: "smartlife-api", Audience: "smartlife-client", BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	foreign, err := other.IssueToken(9)
	require.NoError(t, err)

	wrongIssuer, err := NewService(Config{Secret: testSecret, Issuer: "someone-else", Audience: "smartlife-client", BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	foreignIssuer, err := wrongIssuer.IssueToken(9)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "malformed.token.here"},
		{name: "not a jwt", token: "abc"},
		{name: "tampered signature", token: tampered},
		{name: "different secret", token: foreign},
		{name: "different issuer", token: foreignIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyToken(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
			assert.NotErrorIs(t, err, ErrTokenExpired)
		})
	}
}

func TestVerifyToken_Missing(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.VerifyToken("   ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifyToken_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestService(t)
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "smartlife-api",
		Audience:  jwt.ClaimStrings{"smartlife-client"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_BadSubject(t *testing.T) {
	svc := newTestService(t)
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		Issuer:    "smartlife-api",
		Audience:  jwt.ClaimStrings{"smartlife-client"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
