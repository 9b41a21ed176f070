package wire

import (
	"identity-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUpload(r chi.Router, uploadHandler *adaptor.UploadHandler) {
	r.Post("/api/upload/photo", uploadHandler.Photo)
}
