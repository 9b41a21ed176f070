package adaptor

import (
	"identity-service/internal/usecase"
	"identity-service/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Account *AccountHandler
	Upload  *UploadHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config, log),
		Account: NewAccountHandler(service.Account, log),
		Upload:  NewUploadHandler(service.Upload, log),
	}
}
