package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)
	accountID := uuid.New()

	tok, expiresAt, err := issuer.Issue(accountID, "user")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.AccountID)
	assert.Equal(t, "user", claims.Role)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", -1*time.Second)

	tok, _, err := issuer.Issue(uuid.New(), "user")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewIssuer("right-secret", time.Hour).Issue(uuid.New(), "user")
	require.NoError(t, err)

	_, err = NewIssuer("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("secret", time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
