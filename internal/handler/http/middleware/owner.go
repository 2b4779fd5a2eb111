package middleware

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// SelfOrAdmin allows the request when the {uid} route parameter matches the
// caller's own identity, or when the caller is an admin.
func SelfOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role, ok := claims["role"].(string); ok && role == string(user.RoleAdmin) {
			next.ServeHTTP(w, r)
			return
		}

		uid, _ := claims["user_id"].(string)
		if uid == "" || uid != chi.URLParam(r, "uid") {
			response.HandleError(w, user.ErrNotResourceOwner)
			return
		}

		next.ServeHTTP(w, r)
	})
}
