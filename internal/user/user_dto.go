package user

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	EmployeeNumber string `json:"employee_number" binding:"required"`
	Password       string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse deliberately carries no account data: no hash, no token.
type RegisterResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
