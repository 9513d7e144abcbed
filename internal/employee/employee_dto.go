package employee

type CreateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	PositionID   string `json:"position_id" binding:"omitempty,uuid"`
}

type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	PositionID   string `json:"position_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	DepartmentID string `json:"department_id,omitempty"`
	PositionID   string `json:"position_id,omitempty"`
}

// EmployeeOption is the shape the approver picker consumes.
type EmployeeOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
