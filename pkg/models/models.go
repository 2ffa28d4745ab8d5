package models

import "time"

// ErrorResponse is the uniform error envelope returned by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// LoginRequest carries user credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	WorkspaceID *int      `json:"workspaceId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateUserRequest carries the fields to register a user
type CreateUserRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Role        string   `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN AGENT"`
	Permissions []string `json:"permissions"`
	WorkspaceID *int     `json:"workspaceId"`
}

// UpdateUserRequest carries the mutable fields of a user
type UpdateUserRequest struct {
	Name        *string   `json:"name"`
	Password    *string   `json:"password" validate:"omitempty,min=8"`
	Role        *string   `json:"role" validate:"omitempty,oneof=SUPER_ADMIN ADMIN AGENT"`
	Permissions *[]string `json:"permissions"`
	WorkspaceID *int      `json:"workspaceId"`
}

// ProjectResponse is the public view of a project
type ProjectResponse struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	WorkspaceID int            `json:"workspaceId"`
	Agents      []UserResponse `json:"agents,omitempty"`
	LeadCount   int            `json:"leadCount"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// CreateProjectRequest carries the fields to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	AgentIDs    []int  `json:"agentIds"`
	WorkspaceID *int   `json:"workspaceId"`
}

// UpdateProjectRequest carries the mutable fields of a project. A nil
// AgentIDs leaves the agent roster untouched; an empty slice clears it.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	AgentIDs    *[]int  `json:"agentIds"`
}

// CreateLeadRequest carries the fields to create a single lead
type CreateLeadRequest struct {
	Name            string  `json:"name" validate:"required"`
	ProjectID       int     `json:"projectId" validate:"required"`
	Company         string  `json:"company"`
	Email           string  `json:"email" validate:"omitempty,email"`
	Phone           string  `json:"phone"`
	Mobile          string  `json:"mobile"`
	CorporatePhone  string  `json:"corporatePhone"`
	Title           string  `json:"title"`
	Industry        string  `json:"industry"`
	Revenue         string  `json:"revenue"`
	Employees       string  `json:"employees"`
	State           string  `json:"state"`
	LinkedIn        string  `json:"linkedin"`
	Website         string  `json:"website"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
	Source          string  `json:"source"`
	DealValue       float64 `json:"dealValue"`
	AssignedAgentID *int    `json:"assignedAgentId"`
}

// LeadResponse is the public view of a lead
type LeadResponse struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Company         string     `json:"company,omitempty"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Mobile          string     `json:"mobile,omitempty"`
	CorporatePhone  string     `json:"corporatePhone,omitempty"`
	Title           string     `json:"title,omitempty"`
	Industry        string     `json:"industry,omitempty"`
	Revenue         string     `json:"revenue,omitempty"`
	Employees       string     `json:"employees,omitempty"`
	State           string     `json:"state,omitempty"`
	LinkedIn        string     `json:"linkedin,omitempty"`
	Website         string     `json:"website,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	NextFollowUp    *time.Time `json:"nextFollowUp,omitempty"`
	DealValue       float64    `json:"dealValue"`
	Source          string     `json:"source,omitempty"`
	ProjectID       int        `json:"projectId"`
	WorkspaceID     int        `json:"workspaceId"`
	AssignedAgentID *int       `json:"assignedAgentId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// UpdateLeadResponse wraps an updated lead together with the fields the
// caller requested but was not authorized to change.
type UpdateLeadResponse struct {
	Lead           LeadResponse `json:"lead"`
	RejectedFields []string     `json:"rejectedFields,omitempty"`
}

// ImportRequest carries a parsed bulk-import payload
type ImportRequest struct {
	ProjectID int                 `json:"projectId" validate:"required"`
	Leads     []map[string]string `json:"leads" validate:"required"`
}

// ActivityResponse is the public view of an activity log entry
type ActivityResponse struct {
	ID             int       `json:"id"`
	LeadID         *int      `json:"leadId,omitempty"`
	UserID         int       `json:"userId"`
	Action         string    `json:"action"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	NewStatus      string    `json:"newStatus,omitempty"`
	Details        string    `json:"details,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
