package dto

// CreateClassroomRequest represents classroom creation data
type CreateClassroomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required" example:"204"`
	Block      string `json:"block" binding:"required" example:"B"`
	Capacity   int    `json:"capacity" binding:"required,gte=1" example:"60"`
}

// UpdateClassroomRequest represents classroom update data (full replacement)
type UpdateClassroomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	Block      string `json:"block" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,gte=1"`
}
