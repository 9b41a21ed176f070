package repository

import (
	"identity-service/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Account AccountRepository
	OTP     OTPRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Account: NewAccountRepository(db, log),
		OTP:     NewOTPRepository(db, log),
	}
}
