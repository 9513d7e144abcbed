package leaverequest

type CreateLeaveRequestRequest struct {
	TypeID              string   `json:"type_id" binding:"required,uuid"`
	StartDate           string   `json:"start_date" binding:"required"`
	EndDate             string   `json:"end_date" binding:"required"`
	Reason              string   `json:"reason" binding:"max=1000"`
	ApproverEmployeeIDs []string `json:"approver_employee_ids" binding:"required,min=1,dive,uuid"`
}

type RejectLeaveRequestRequest struct {
	Comment *string `json:"comment"`
}

type LeaveApprovalResponse struct {
	ID                 string  `json:"id"`
	Order              int     `json:"order"`
	ApproverEmployeeID string  `json:"approver_employee_id"`
	Status             string  `json:"status"`
	Comment            *string `json:"comment,omitempty"`
	DecidedAt          *string `json:"decided_at,omitempty"`
}

type LeaveRequestResponse struct {
	ID                   string                  `json:"id"`
	EmployeeID           string                  `json:"employee_id"`
	UserID               string                  `json:"user_id"`
	TypeID               string                  `json:"type_id"`
	TypeName             string                  `json:"type_name,omitempty"`
	StartDate            string                  `json:"start_date"`
	EndDate              string                  `json:"end_date"`
	Reason               string                  `json:"reason,omitempty"`
	Status               string                  `json:"status"`
	CurrentApprovalOrder *int                    `json:"current_approval_order,omitempty"`
	DecidedAt            *string                 `json:"decided_at,omitempty"`
	CreatedAt            string                  `json:"created_at"`
	Approvals            []LeaveApprovalResponse `json:"approvals"`
}

type DecisionResponse struct {
	Ok bool `json:"ok"`
}
