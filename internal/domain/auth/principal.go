package auth

import (
	"context"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
)

// Principal is the authenticated caller as seen by the services.
type Principal struct {
	EmployeeID string
	Email      string
	Role       employee.Role
}

func (p Principal) IsPrivileged() bool {
	return p.Role.IsPrivileged()
}

// ScopeEmployeeID resolves which employee a query targets. Employees are
// always pinned to themselves; HR and Admin get the requested id, which may
// be empty to mean everyone.
func (p Principal) ScopeEmployeeID(requested string) string {
	if !p.IsPrivileged() {
		return p.EmployeeID
	}
	return requested
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
