package usecase

import (
	"identity-service/internal/data/repository"
	"identity-service/pkg/storage"
	"identity-service/pkg/token"
	"identity-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Account AccountService
	OTP     OTPService
	Upload  UploadService
}

func NewService(
	repo *repository.Repository,
	issuer *token.Issuer,
	notifier *Notifier,
	uploader storage.Uploader,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	otp := NewOTPService(repo, config, log)

	return &Service{
		Auth:    NewAuthService(repo, otp, issuer, notifier, config, log),
		Account: NewAccountService(repo.Account, log),
		OTP:     otp,
		Upload:  NewUploadService(uploader, log),
	}
}
