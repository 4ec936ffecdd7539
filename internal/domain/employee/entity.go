package employee

import (
	"strings"
	"time"
)

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "Admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may act on other employees' records.
func (r Role) IsPrivileged() bool {
	return r == RoleHR || r == RoleAdmin
}

type Employee struct {
	ID           string
	EmployeeCode string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Summary is the slice of an employee joined onto attendance and leave rows.
type Summary struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}
