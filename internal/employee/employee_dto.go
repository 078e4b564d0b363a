package employee

type CreateEmployeeRequest struct {
	EmployeeNumber  string  `json:"employee_number" binding:"required"`
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	CurrentOfficeID *string `json:"current_office_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest is a partial payload: absent fields keep their prior
// values. An empty payload is a no-op read.
type UpdateEmployeeRequest struct {
	EmployeeNumber  *string `json:"employee_number" binding:"omitempty,min=1"`
	FirstName       *string `json:"first_name" binding:"omitempty,min=1"`
	LastName        *string `json:"last_name" binding:"omitempty,min=1"`
	Email           *string `json:"email" binding:"omitempty,email"`
	CurrentOfficeID *string `json:"current_office_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeNumber  string `json:"employee_number"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	CurrentOfficeID string `json:"current_office_id,omitempty"`
}
