package middleware

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. Refresh
// tokens are only good for the refresh endpoint, never for API calls.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			switch {
			case err != nil:
				response.Unauthorized(w, err.Error())
			case token == nil:
				response.HandleError(w, auth.ErrInvalidToken)
			default:
				if tokenType, _ := claims["type"].(string); tokenType != "access" {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				next.ServeHTTP(w, r)
			}
		})
	}
}
