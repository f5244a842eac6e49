package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sandevex/hiring-backend-go/internal/domain/audit"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
)

// SessionRequired rejects requests without a valid admin session token and
// stamps the request context with the acting operator for the audit trail.
func SessionRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Admin session required")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Admin session required")
				return
			}

			tokenType, _ := claims["type"].(string)
			role, _ := claims["role"].(string)
			if tokenType != "session" || role != "admin" {
				response.Unauthorized(w, "Admin session required")
				return
			}

			ctx := audit.WithActor(r.Context(), audit.Actor{
				PerformedBy: "admin",
				IPAddress:   r.RemoteAddr,
				UserAgent:   r.UserAgent(),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
