package models

import "time"

// RoomAllocation holds the students and invigilators assigned to a single
// classroom within one allocation. Students and staff are referenced, not
// copied; the slices are owned by the enclosing Allocation.
type RoomAllocation struct {
	ClassroomID      int64      `json:"classroomId" db:"classroom_id" example:"1"`
	RoomNumber       string     `json:"roomNumber" db:"room_number" example:"204"`
	Block            string     `json:"block" db:"block" example:"B"`
	Capacity         int        `json:"capacity" db:"capacity" example:"60"`
	StudentsAssigned []*Student `json:"studentsAssigned"`
	StaffAssigned    []*Staff   `json:"staffAssigned"`
}

// Allocation is the output of one generation run for one exam: the ordered
// set of room-level student and staff assignments. Immutable once stored.
type Allocation struct {
	ID                     int64             `json:"id" db:"id" example:"1"`
	ExamID                 int64             `json:"examId" db:"exam_id" example:"1"`
	RoomAllocations        []*RoomAllocation `json:"roomAllocations"`
	TotalStudentsAllocated int               `json:"totalStudentsAllocated" db:"total_students_allocated" example:"182"`
	TotalRoomsUsed         int               `json:"totalRoomsUsed" db:"total_rooms_used" example:"4"`
	CreatedAt              time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time         `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Exam *Exam `json:"exam,omitempty"`
}
