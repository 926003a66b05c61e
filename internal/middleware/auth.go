package middleware

import (
	"net/http"
	"strings"

	"github.com/Jfgm299/centro-control-personal/internal/auth"
)

// AuthMiddleware validates the Bearer access token and stores the user id
// in the request context. Every /api/v1 route sits behind it except the
// auth endpoints themselves.
func AuthMiddleware(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := issuer.VerifyAccessToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
