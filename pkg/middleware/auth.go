package middleware

import (
	"net/http"
	"strings"

	"identity-service/pkg/token"
	"identity-service/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the session token from the Authorization header or the
// access_token cookie and places {accountId, role} in the request
// context.
func Auth(issuer *token.Issuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			claims, err := issuer.Verify(tokenString)
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			accountID, err := utils.ParseUUID(claims.AccountID)
			if err != nil {
				logger.Warn("Malformed account ID in token", zap.String("account_id", claims.AccountID))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetAccountContext(r.Context(), accountID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	// A non-Bearer Authorization header is ignored rather than treated as
	// an auth attempt, so cookie sessions still work alongside it.
	authHeader := r.Header.Get("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	cookie, err := r.Cookie("access_token")
	if err != nil {
		return ""
	}
	return cookie.Value
}
