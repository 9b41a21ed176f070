package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext secret with bcrypt. Both account
// passwords and OTP codes go through this, so short numeric codes get
// the same brute-force resistance as passwords.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// CheckPasswordHash compares a plaintext secret against a stored bcrypt
// digest in constant time.
func CheckPasswordHash(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
