package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64  `json:"id" db:"id" example:"1"`                   // Unique identifier for the student record
	USN        string `json:"usn" db:"usn" example:"4VV21CS042"`        // University serial number, unique, 10 characters
	Name       string `json:"name" db:"name" example:"Ananya Rao"`      // Student's full name
	Semester   int    `json:"semester" db:"semester" example:"5"`       // Current semester (1-8)
	Department string `json:"department" db:"department" example:"CSE"` // Department code
}
