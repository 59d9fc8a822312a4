package models

import "time"

// Exam defines a CIA exam session based on the 'exams' table
type Exam struct {
	ID       int64     `json:"id" db:"id" example:"1"`
	ExamName string    `json:"examName" db:"exam_name" example:"CIA-2 October 2025"`
	Date     time.Time `json:"date" db:"date" example:"2025-10-14T09:30:00Z"`
	Semester int       `json:"semester" db:"semester" example:"5"` // Target semester; all students of this semester are eligible
}
