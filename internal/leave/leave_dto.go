package leave

type CreateLeaveRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required,uuid"`
	LeaveTypeID string `json:"leaveTypeId" binding:"required,uuid"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

// DecideLeaveRequest carries the manager's verdict. Status uses the client
// label form ("Approved"/"Rejected"); comment is mandatory on reject.
type DecideLeaveRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	RequestNumber   string  `json:"requestNumber"`
	EmployeeID      string  `json:"employeeId"`
	LeaveTypeID     string  `json:"leaveTypeId"`
	LeaveType       string  `json:"leaveType,omitempty"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Days            int     `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RequestDate     string  `json:"requestDate"`
	ApprovalDate    *string `json:"approvalDate,omitempty"`
	ApproverComment *string `json:"approverComment,omitempty"`
}

// TeamLeaveResponse is the manager-scope row, enriched with the requesting
// employee's name and department.
type TeamLeaveResponse struct {
	ID              string  `json:"id"`
	RequestNumber   string  `json:"requestNumber"`
	EmployeeID      string  `json:"employeeId"`
	EmployeeName    string  `json:"employeeName"`
	Department      string  `json:"department,omitempty"`
	LeaveType       string  `json:"leaveType"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Days            int     `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RequestDate     string  `json:"requestDate"`
	ApprovalDate    *string `json:"approvedDate,omitempty"`
	ApproverComment *string `json:"rejectReason,omitempty"`
}

type DecisionResponse struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	Days            int     `json:"days"`
	ApprovalDate    string  `json:"approvalDate"`
	ApproverComment *string `json:"approverComment,omitempty"`
}

type ManagerInfoResponse struct {
	FullName   string `json:"fullName"`
	Position   string `json:"position"`
	Department string `json:"department,omitempty"`
}

type TeamStatsResponse struct {
	TotalEmployees  int64 `json:"totalEmployees"`
	OnLeaveToday    int64 `json:"onLeaveToday"`
	PendingRequests int64 `json:"pendingRequests"`
}

type RecentRequestResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Days   int    `json:"days"`
	Status string `json:"status"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type DashboardStatsResponse struct {
	ManagerInfo    ManagerInfoResponse     `json:"managerInfo"`
	TeamStats      TeamStatsResponse       `json:"teamStats"`
	RecentRequests []RecentRequestResponse `json:"recentRequests"`
}
