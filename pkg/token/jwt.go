package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims binds an account identity and its role to the standard
// registered claims.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"accountId"`
	Role      string `json:"role"`
}

// Issuer mints and verifies HS256 session tokens. Rotating the secret
// invalidates every outstanding token.
type Issuer struct {
	secret   []byte
	validity time.Duration
}

func NewIssuer(secret string, validity time.Duration) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		validity: validity,
	}
}

// Issue signs a token for the account and returns it with its absolute
// expiry.
func (i *Issuer) Issue(accountID uuid.UUID, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(i.validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AccountID: accountID.String(),
		Role:      role,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// Verify rejects tokens with a bad signature or past their expiry.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
