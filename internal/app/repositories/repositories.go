package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	StaffRepository      *StaffRepository
	ClassroomRepository  *ClassroomRepository
	ExamRepository       *ExamRepository
	AllocationRepository *AllocationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		StaffRepository:      NewStaffRepository(db),
		ClassroomRepository:  NewClassroomRepository(db),
		ExamRepository:       NewExamRepository(db),
		AllocationRepository: NewAllocationRepository(db),
	}
}
