package usecase

import (
	"context"
	"fmt"
	"time"

	"identity-service/internal/common"
	"identity-service/internal/data/entity"
	"identity-service/internal/data/repository"
	"identity-service/pkg/utils"

	"go.uber.org/zap"
)

// OTPService owns the passcode lifecycle: Issue creates a pending code,
// Verify transitions it to verified, ConsumeForReset spends a verified
// code and removes it. A code is single-use across the whole sequence.
type OTPService interface {
	Issue(ctx context.Context, email string) (*entity.Account, string, error)
	Verify(ctx context.Context, email, code string) error
	ConsumeForReset(ctx context.Context, email, code string) (*entity.Account, error)
}

type otpService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewOTPService(repo *repository.Repository, config *utils.Config, log *zap.Logger) OTPService {
	return &otpService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// Issue generates a fresh 6-digit code for a registered email. Any prior
// pending code for the email is invalidated first, so at most one
// pending code is authoritative at a time. The plaintext code is
// returned for out-of-band delivery and never persisted.
func (s *otpService) Issue(ctx context.Context, email string) (*entity.Account, string, error) {
	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up account for OTP", zap.Error(err), zap.String("email", email))
		return nil, "", fmt.Errorf("issue OTP: %w", err)
	}
	if account == nil {
		return nil, "", common.ErrNotFound
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate OTP code", zap.Error(err))
		return nil, "", fmt.Errorf("issue OTP: %w", err)
	}

	codeHash, err := utils.HashPassword(code, s.config.Hash.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash OTP code", zap.Error(err))
		return nil, "", fmt.Errorf("issue OTP: %w", err)
	}

	// Delete-then-insert is two statements; concurrent issues can leave
	// extra rows, and the latest-first selection in Verify keeps that
	// correct.
	if err := s.repo.OTP.DeletePending(ctx, account.Email); err != nil {
		return nil, "", fmt.Errorf("issue OTP: %w", err)
	}

	now := time.Now()
	otp := &entity.OtpRecord{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		AccountID: account.ID,
		Email:     account.Email,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
		DeleteAt:  now.Add(time.Duration(s.config.OTP.DeleteAfterMinutes) * time.Minute),
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		return nil, "", fmt.Errorf("issue OTP: %w", err)
	}

	s.log.Info("OTP issued",
		zap.String("email", account.Email),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	return account, code, nil
}

// Verify checks the submitted code against the latest pending record.
// A missing record and a hash mismatch both come back as ErrOTPInvalid
// so callers cannot probe which codes are live.
func (s *otpService) Verify(ctx context.Context, email, code string) error {
	otp, err := s.repo.OTP.FindLatestPending(ctx, email)
	if err != nil {
		return fmt.Errorf("verify OTP: %w", err)
	}
	if otp == nil {
		return common.ErrOTPInvalid
	}

	if !time.Now().Before(otp.ExpiresAt) {
		return common.ErrOTPExpired
	}

	if !utils.CheckPasswordHash(code, otp.CodeHash) {
		return common.ErrOTPInvalid
	}

	marked, err := s.repo.OTP.MarkUsed(ctx, otp.ID)
	if err != nil {
		return fmt.Errorf("verify OTP: %w", err)
	}
	if !marked {
		// A concurrent verify already spent this record.
		return common.ErrOTPInvalid
	}

	s.log.Info("OTP verified", zap.String("email", email))
	return nil
}

// ConsumeForReset re-checks an already-verified code and deletes the
// record on success. Resetting without a prior Verify always fails: the
// complementary used_at filter is what enforces the two-step flow.
func (s *otpService) ConsumeForReset(ctx context.Context, email, code string) (*entity.Account, error) {
	otp, err := s.repo.OTP.FindLatestVerified(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("consume OTP: %w", err)
	}
	if otp == nil {
		return nil, common.ErrOTPInvalid
	}

	if !time.Now().Before(otp.ExpiresAt) {
		return nil, common.ErrOTPExpired
	}

	if !utils.CheckPasswordHash(code, otp.CodeHash) {
		return nil, common.ErrOTPInvalid
	}

	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("consume OTP: %w", err)
	}
	if account == nil {
		// Account vanished between issue and reset; do not reveal that.
		return nil, common.ErrOTPInvalid
	}

	if err := s.repo.OTP.Delete(ctx, otp.ID); err != nil {
		return nil, fmt.Errorf("consume OTP: %w", err)
	}

	s.log.Info("OTP consumed for password reset", zap.String("email", email))
	return account, nil
}
