package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Visall666/school-api/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "school-api-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	user := &models.User{ID: 42, Email: "jane@school.edu"}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "jane@school.edu", claims.Email)
	require.Equal(t, "school-api-test", claims.Issuer)
	require.NotEmpty(t, claims.ID)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(&models.User{ID: 1, Email: "x@school.edu"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateToken(&models.User{ID: 1, Email: "x@school.edu"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateAndExtractClaimsRejectsEmptyToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer header", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: ErrInvalidFormat},
		{name: "missing scheme", header: "abc.def.ghi", wantErr: ErrInvalidFormat},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantToken, token)
		})
	}
}
