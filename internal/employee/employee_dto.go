package employee

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Position     string  `json:"position"`
	DepartmentID *string `json:"department_id"`
	ManagerID    *string `json:"manager_id"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`
}
