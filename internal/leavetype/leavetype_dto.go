package leavetype

type CreateLeaveTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type LeaveTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
