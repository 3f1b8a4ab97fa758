package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/rakibdev/takealot-server/pkg/errors"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", 6)

	signed, err := svc.Issue("64f1b2c3d4e5f60718293a4b", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.Subject)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := NewService("secret-one", 6).Issue("id", "a@x.com")
	require.NoError(t, err)

	_, err = NewService("secret-two", 6).Verify(signed)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := NewService("test-secret", 6)
	signed, err := svc.Issue("id", "a@x.com")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService("test-secret", 6)

	_, err := svc.Verify("not-a-jwt")
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	// Negative expiry issues a token that expired an hour ago
	expired := NewService("test-secret", -1)
	signed, err := expired.Issue("id", "a@x.com")
	require.NoError(t, err)

	_, err = NewService("test-secret", 6).Verify(signed)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
