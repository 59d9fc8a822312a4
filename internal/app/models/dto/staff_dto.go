package dto

// CreateStaffRequest represents staff creation data
type CreateStaffRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Dr. Suresh Kumar"`
	Department  string `json:"department" binding:"required" example:"ECE"`
	Designation string `json:"designation" binding:"required" example:"Assistant Professor"`
	IsAvailable *bool  `json:"isAvailable" example:"true"` // Defaults to true when omitted
}

// UpdateStaffRequest represents staff update data (full replacement)
type UpdateStaffRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Department  string `json:"department" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	IsAvailable *bool  `json:"isAvailable" binding:"required"`
}
