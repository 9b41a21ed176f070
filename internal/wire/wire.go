package wire

import (
	"net/http"

	"identity-service/internal/adaptor"
	"identity-service/internal/data/repository"
	"identity-service/internal/usecase"
	"identity-service/pkg/middleware"
	"identity-service/pkg/storage"
	"identity-service/pkg/token"
	"identity-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers, and routes.
func Wiring(
	repo *repository.Repository,
	issuer *token.Issuer,
	notifier *usecase.Notifier,
	uploader storage.Uploader,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, issuer, notifier, uploader, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, issuer, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, issuer *token.Issuer, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireAccount(r, handler.Account, issuer, logger)
	wireUpload(r, handler.Upload)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
