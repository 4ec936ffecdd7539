package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified, unrevoked access token and
// stores the caller's auth.Principal on the request context.
// It must run after jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			employeeID, _ := claims["employee_id"].(string)
			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)
			if employeeID == "" || !employee.Role(role).IsValid() {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			principal := auth.Principal{
				EmployeeID: employeeID,
				Email:      email,
				Role:       employee.Role(role),
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(hfn)
	}
}
