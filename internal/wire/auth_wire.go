package wire

import (
	"identity-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/signin", authHandler.Signin)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)
}
