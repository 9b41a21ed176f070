package usecase

import (
	"context"
	"fmt"
	"time"

	"identity-service/internal/common"
	"identity-service/internal/data/entity"
	"identity-service/internal/data/repository"
	"identity-service/internal/dto/request"
	"identity-service/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountService interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req *request.UpdateProfileRequest) (*response.AccountResponse, error)
	UpdatePhoto(ctx context.Context, accountID uuid.UUID, photoURL string) (*response.AccountResponse, error)
}

type accountService struct {
	accountRepo repository.AccountRepository
	log         *zap.Logger
}

func NewAccountService(accountRepo repository.AccountRepository, log *zap.Logger) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		log:         log,
	}
}

func (s *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response.AccountResponse, error) {
	account, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := response.AccountToResponse(account)
	return &resp, nil
}

// UpdateProfile merges only the fields the request carries; everything
// else keeps its stored value. Repeating the same request is a no-op.
func (s *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req *request.UpdateProfileRequest) (*response.AccountResponse, error) {
	account, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		account.FullName = *req.FullName
	}
	if req.CompanyName != nil {
		account.CompanyName = *req.CompanyName
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.Location != nil {
		account.Location = req.Location
	}
	if req.TimeZone != nil {
		account.TimeZone = req.TimeZone
	}
	if req.Signature != nil {
		account.Signature = req.Signature
	}
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.Update(ctx, account); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("account_id", accountID.String()))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("account_id", accountID.String()))

	resp := response.AccountToResponse(account)
	return &resp, nil
}

func (s *accountService) UpdatePhoto(ctx context.Context, accountID uuid.UUID, photoURL string) (*response.AccountResponse, error) {
	account, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.PhotoURL = &photoURL
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.Update(ctx, account); err != nil {
		s.log.Error("Failed to update photo", zap.Error(err), zap.String("account_id", accountID.String()))
		return nil, fmt.Errorf("update photo: %w", err)
	}

	s.log.Info("Profile photo updated", zap.String("account_id", accountID.String()))

	resp := response.AccountToResponse(account)
	return &resp, nil
}

func (s *accountService) load(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		s.log.Error("Failed to find account", zap.Error(err), zap.String("account_id", accountID.String()))
		return nil, fmt.Errorf("load account: %w", err)
	}
	if account == nil {
		return nil, common.ErrNotFound
	}

	return account, nil
}
