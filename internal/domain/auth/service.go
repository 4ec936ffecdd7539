package auth

import (
	"context"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
)

type AuthService interface {
	SignIn(ctx context.Context, req SignInRequest) (TokenResponse, error)
	SignOut(ctx context.Context, token string) error
	Me(ctx context.Context, principal Principal) (employee.EmployeeResponse, error)
}
