package employee

type SaveEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type EmployeeResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
	}
}
