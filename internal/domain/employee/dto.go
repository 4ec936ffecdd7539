package employee

type EmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsActive     bool   `json:"is_active"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Email:        e.Email,
		Role:         e.Role,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		IsActive:     e.IsActive,
	}
}
