package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee code or email already registered")
	ErrInvalidRole      = errors.New("role must be one of Employee, HR, Admin")
)
