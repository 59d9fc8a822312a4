package models

// Staff defines the staff model based on the 'staff' table
type Staff struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Dr. Suresh Kumar"`
	Department  string `json:"department" db:"department" example:"ECE"`
	Designation string `json:"designation" db:"designation" example:"Assistant Professor"`
	IsAvailable bool   `json:"isAvailable" db:"is_available" example:"true"` // Only available staff are eligible for invigilation duty
}
