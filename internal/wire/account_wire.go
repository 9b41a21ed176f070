package wire

import (
	"identity-service/internal/adaptor"
	"identity-service/pkg/middleware"
	"identity-service/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAccount(r chi.Router, accountHandler *adaptor.AccountHandler, issuer *token.Issuer, log *zap.Logger) {
	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.Auth(issuer, log))
		r.Get("/profile", accountHandler.Profile)
		r.Put("/profile", accountHandler.UpdateProfile)
		r.Put("/photo", accountHandler.UpdatePhoto)
	})
}
