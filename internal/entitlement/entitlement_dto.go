package entitlement

type GrantEntitlementRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	Year        int    `json:"year" binding:"required,min=2000"`
	TotalDays   int    `json:"total_days" binding:"required,min=0"`
}

type EntitlementResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
	Quota       int    `json:"quota"`
	Used        int    `json:"used"`
	Remaining   int    `json:"remaining"`
}

// SummaryResponse is one line of the per-employee, current-year summary view.
type SummaryResponse struct {
	LeaveTypeID string `json:"leaveTypeId"`
	Name        string `json:"name"`
	Quota       int    `json:"quota"`
	Used        int    `json:"used"`
	Remaining   int    `json:"remaining"`
}
