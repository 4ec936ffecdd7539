package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
	authService "github.com/hrms-workforce/hrms-backend-go/internal/service/auth"
)

// DefaultAdminCode is the employee code given to the bootstrap administrator.
const DefaultAdminCode = "ADM-0001"

// GetDefaultAdmin returns the bootstrap administrator for a fresh database.
func GetDefaultAdmin(email, passwordHash string) employee.Employee {
	return employee.Employee{
		EmployeeCode: DefaultAdminCode,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         employee.RoleAdmin,
		FirstName:    "System",
		LastName:     "Administrator",
		IsActive:     true,
	}
}

// SeedAdmin creates the bootstrap administrator unless an account with that
// email already exists. It reports whether a new account was created.
func SeedAdmin(ctx context.Context, tx database.Transactor, employees employee.EmployeeRepository, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	var created employee.Employee
	err = tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := employees.GetByEmail(txCtx, email); err == nil {
			return nil
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("failed to look up admin account: %w", err)
		}

		admin, err := employees.Create(txCtx, GetDefaultAdmin(email, hash))
		if err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
		created = admin
		return nil
	})
	if err != nil {
		return false, err
	}
	if created.ID == "" {
		return false, nil
	}

	slog.Info("Seeded administrator account", "employee_id", created.ID, "email", created.Email)
	return true, nil
}
