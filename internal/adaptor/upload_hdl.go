package adaptor

import (
	"net/http"

	"identity-service/internal/usecase"
	"identity-service/pkg/utils"

	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20 // 10 MB

type UploadHandler struct {
	service usecase.UploadService
	log     *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log,
	}
}

// Photo handles POST /api/upload/photo. Expects a multipart form with a
// "file" part and an optional "folder" field.
func (h *UploadHandler) Photo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "No file uploaded", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "No file uploaded", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	folder := r.FormValue("folder")

	result, err := h.service.UploadPhoto(r.Context(), folder, header.Filename, contentType, file)
	if err != nil {
		h.log.Error("Photo upload failed", zap.Error(err))
		utils.ResponseInternalError(w, "Upload failed")
		return
	}

	utils.ResponseSuccess(w, "Photo uploaded", result)
}
