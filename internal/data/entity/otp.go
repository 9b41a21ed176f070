package entity

import (
	"time"

	"github.com/google/uuid"
)

// OtpRecord stores one issued passcode. The code itself is never
// persisted, only its bcrypt hash. DeleteAt is the hard horizon after
// which the janitor purges the row regardless of use.
type OtpRecord struct {
	BaseSimple
	AccountID uuid.UUID  `db:"account_id"`
	Email     string     `db:"email"`
	CodeHash  string     `db:"code_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	DeleteAt  time.Time  `db:"delete_at"`
	UsedAt    *time.Time `db:"used_at"`
}
