package models

// Classroom defines the classroom model based on the 'classrooms' table
type Classroom struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	RoomNumber string `json:"roomNumber" db:"room_number" example:"204"`
	Block      string `json:"block" db:"block" example:"B"`
	Capacity   int    `json:"capacity" db:"capacity" example:"60"` // Seating capacity, always >= 1
}
