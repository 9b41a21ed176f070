package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"identity-service/internal/common"
	"identity-service/internal/dto/request"
	"identity-service/internal/usecase"
	"identity-service/pkg/utils"

	"go.uber.org/zap"
)

type AccountHandler struct {
	service usecase.AccountService
	log     *zap.Logger
}

func NewAccountHandler(service usecase.AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		log:     log,
	}
}

// Profile handles GET /api/user/profile
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	account, err := h.service.GetProfile(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile", account)
}

// UpdateProfile handles PUT /api/user/profile
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	account, err := h.service.UpdateProfile(r.Context(), accountID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", account)
}

// UpdatePhoto handles PUT /api/user/photo
func (h *AccountHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdatePhotoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	account, err := h.service.UpdatePhoto(r.Context(), accountID, req.PhotoURL)
	if err != nil {
		h.handleServiceError(w, err, "update photo")
		return
	}

	utils.ResponseSuccess(w, "Photo updated", account)
}

func (h *AccountHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Account not found")
	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
