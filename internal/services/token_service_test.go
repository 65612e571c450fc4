package services

import (
	"testing"
	"time"

	"fintrack/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite is the test suite for the token service
type TokenServiceTestSuite struct {
	suite.Suite
	service TokenServiceInterface
	config  *config.JWTConfig
	userID  uuid.UUID
}

// SetupSuite runs once before the suite; key generation is slow enough
// to share across tests
func (s *TokenServiceTestSuite) SetupSuite() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(s.T(), err)

	s.config = &config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-api",
	}
	s.service = NewTokenService(s.config)
	s.userID = uuid.New()
}

// TestTokenServiceTestSuite runs the test suite
func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

// TestGenerateAndValidate_Roundtrip tests issuing then validating a token
func (s *TokenServiceTestSuite) TestGenerateAndValidate_Roundtrip() {
	tokenString, expiresAt, err := s.service.GenerateAccessToken(s.userID, "user@example.com")
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), tokenString)
	assert.True(s.T(), expiresAt.After(time.Now()))

	claims, err := s.service.ValidateAccessToken(tokenString)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), s.userID.String(), claims.UserID)
	assert.Equal(s.T(), "user@example.com", claims.Email)
	assert.Equal(s.T(), TokenTypeAccess, claims.TokenType)
	assert.Equal(s.T(), "fintrack-api", claims.Issuer)
}

// TestGenerateAccessToken_NilUser tests rejection of a nil user ID
func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUser() {
	_, _, err := s.service.GenerateAccessToken(uuid.Nil, "user@example.com")
	require.Error(s.T(), err)
}

// TestValidateAccessToken_Empty tests validation of an empty token
func (s *TokenServiceTestSuite) TestValidateAccessToken_Empty() {
	_, err := s.service.ValidateAccessToken("")
	assert.ErrorIs(s.T(), err, ErrEmptyToken)
}

// TestValidateAccessToken_Malformed tests validation of garbage input
func (s *TokenServiceTestSuite) TestValidateAccessToken_Malformed() {
	_, err := s.service.ValidateAccessToken("not.a.token")
	assert.ErrorIs(s.T(), err, ErrInvalidToken)
}

// TestValidateAccessToken_Expired tests validation of an expired token
func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	expiredConfig := *s.config
	expiredConfig.AccessTokenDuration = -time.Hour
	expiredService := NewTokenService(&expiredConfig)

	tokenString, _, err := expiredService.GenerateAccessToken(s.userID, "")
	require.NoError(s.T(), err)

	_, err = s.service.ValidateAccessToken(tokenString)
	assert.ErrorIs(s.T(), err, ErrExpiredToken)
}

// TestValidateAccessToken_WrongIssuer tests issuer pinning
func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	otherConfig := *s.config
	otherConfig.Issuer = "some-other-service"
	otherService := NewTokenService(&otherConfig)

	tokenString, _, err := otherService.GenerateAccessToken(s.userID, "")
	require.NoError(s.T(), err)

	_, err = s.service.ValidateAccessToken(tokenString)
	assert.ErrorIs(s.T(), err, ErrInvalidIssuer)
}

// TestValidateAccessToken_WrongKey tests signature verification
func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongKey() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(s.T(), err)

	foreignService := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-api",
	})

	tokenString, _, err := foreignService.GenerateAccessToken(s.userID, "")
	require.NoError(s.T(), err)

	_, err = s.service.ValidateAccessToken(tokenString)
	assert.ErrorIs(s.T(), err, ErrInvalidToken)
}

// TestExtractTokenFromHeader tests Authorization header parsing
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "standard bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing scheme", header: "abc123", wantErr: true},
		{name: "scheme without token", header: "Bearer ", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.ErrorIs(s.T(), err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tt.want, token)
		})
	}
}
