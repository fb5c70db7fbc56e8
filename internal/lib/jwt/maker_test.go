package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewMaker(secretKey, tokenTTL)

	tests := []struct {
		name    string
		subject string
	}{
		{
			name:    "admin email",
			subject: "admin@rental.example",
		},
		{
			name:    "email with plus",
			subject: "staff+ops@rental.example",
		},
		{
			name:    "email with digits",
			subject: "user123@rental.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.subject)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.subject, claims.Subject)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

// Каждый выпущенный токен получает уникальный идентификатор (jti),
// поэтому два токена одного субъекта никогда не совпадают.
func TestMaker_GenerateToken_UniqueID(t *testing.T) {
	maker := NewMaker("test_secret_key_1234567890", 15*time.Minute)

	first, err := maker.GenerateToken("admin@rental.example")
	require.NoError(t, err)
	second, err := maker.GenerateToken("admin@rental.example")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey, 15*time.Minute)

	otherMaker := NewMaker("another_secret_key", 15*time.Minute)
	foreignToken, err := otherMaker.GenerateToken("admin@rental.example")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "garbage token",
			token: "not.a.jwt",
		},
		{
			name:  "token signed with another key",
			token: foreignToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

// Токен с истекшим сроком действия должен отклоняться: истечение —
// единственный механизм инвалидации.
func TestMaker_ParseToken_Expired(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	shortMaker := NewMaker(secretKey, -time.Minute)

	token, err := shortMaker.GenerateToken("admin@rental.example")
	require.NoError(t, err)

	parser := NewMaker(secretKey, 15*time.Minute)
	claims, err := parser.ParseToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}
