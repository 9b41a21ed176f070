package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"identity-service/internal/common"
	"identity-service/internal/data/entity"
	"identity-service/internal/data/repository"
	"identity-service/internal/dto/request"
	"identity-service/internal/dto/response"
	"identity-service/pkg/token"
	"identity-service/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AccountResponse, error)
	Signin(ctx context.Context, req *request.SigninRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	repo     *repository.Repository
	otp      OTPService
	issuer   *token.Issuer
	notifier *Notifier
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	otp OTPService,
	issuer *token.Issuer,
	notifier *Notifier,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		otp:      otp,
		issuer:   issuer,
		notifier: notifier,
		config:   config,
		log:      log,
	}
}

// Signup registers an account with a server-generated temporary
// password, delivered by mail. Notification failure never fails the
// registration.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AccountResponse, error) {
	email := normalizeEmail(req.Email)

	tempPassword, err := utils.GenerateTempPassword()
	if err != nil {
		s.log.Error("Failed to generate temporary password", zap.Error(err))
		return nil, fmt.Errorf("signup: %w", err)
	}

	passwordHash, err := utils.HashPassword(tempPassword, s.config.Hash.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("signup: %w", err)
	}

	plan := entity.PlanTrial
	if req.Plan != "" {
		plan = entity.Plan(req.Plan)
	}

	now := time.Now()
	account := &entity.Account{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		FullName:     req.FullName,
		CompanyName:  req.CompanyName,
		Phone:        req.Phone,
		Location:     req.Location,
		TimeZone:     req.TimeZone,
		Signature:    req.Signature,
		Role:         entity.RoleUser,
		Plan:         plan,
		PasswordHash: passwordHash,
	}

	if err := s.repo.Account.Create(ctx, account); err != nil {
		if !errors.Is(err, common.ErrDuplicateEmail) {
			s.log.Error("Failed to create account", zap.Error(err), zap.String("email", email))
		}
		return nil, err
	}

	s.notifier.Enqueue(Notification{
		To:      email,
		Subject: "Welcome to " + s.config.App.Name,
		Body: fmt.Sprintf("<p>Hi %s,</p><p>Your account has been created. Your temporary password is <b>%s</b>. Please sign in and change it.</p>",
			account.FullName, tempPassword),
	})

	s.log.Info("Account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("email", email),
	)

	resp := response.AccountToResponse(account)
	return &resp, nil
}

// Signin distinguishes an unknown email from a wrong password so the
// HTTP layer can map them to 404 and 401 respectively.
func (s *authService) Signin(ctx context.Context, req *request.SigninRequest) (*response.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find account", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("signin: %w", err)
	}
	if account == nil {
		return nil, common.ErrNotFound
	}

	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		s.log.Warn("Invalid password attempt", zap.String("account_id", account.ID.String()))
		return nil, common.ErrInvalidCredential
	}

	tokenString, expiresAt, err := s.issuer.Issue(account.ID, string(account.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("account_id", account.ID.String()))
		return nil, fmt.Errorf("signin: %w", err)
	}

	s.log.Info("Account signed in",
		zap.String("account_id", account.ID.String()),
		zap.String("email", email),
	)

	return &response.AuthResponse{
		Account:   response.AccountToResponse(account),
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}, nil
}

// ForgotPassword issues an OTP and mails the plaintext code.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	account, code, err := s.otp.Issue(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	s.notifier.Enqueue(Notification{
		To:      account.Email,
		Subject: "Your password reset code",
		Body: fmt.Sprintf("<p>Hi %s,</p><p>Your one-time passcode is <b>%s</b>. It expires in %d minutes.</p>",
			account.FullName, code, s.config.OTP.ExpiryMinutes),
	})

	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	return s.otp.Verify(ctx, normalizeEmail(email), code)
}

// ResetPassword consumes a verified OTP, replaces the stored hash, and
// confirms by mail.
func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	account, err := s.otp.ConsumeForReset(ctx, normalizeEmail(email), code)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(newPassword, s.config.Hash.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("reset password: %w", err)
	}

	if err := s.repo.Account.SetPassword(ctx, account.ID, passwordHash); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.notifier.Enqueue(Notification{
		To:      account.Email,
		Subject: "Your password was changed",
		Body: fmt.Sprintf("<p>Hi %s,</p><p>Your password has just been changed. If this wasn't you, contact support immediately.</p>",
			account.FullName),
	})

	s.log.Info("Password reset", zap.String("account_id", account.ID.String()))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
