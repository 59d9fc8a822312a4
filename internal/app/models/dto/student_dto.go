package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	USN        string `json:"usn" binding:"required,usn" example:"4VV21CS042"`
	Name       string `json:"name" binding:"required,min=2,max=100" example:"Ananya Rao"`
	Semester   int    `json:"semester" binding:"required,gte=1,lte=8" example:"5"`
	Department string `json:"department" binding:"required" example:"CSE"`
}

// UpdateStudentRequest represents student update data (full replacement)
type UpdateStudentRequest struct {
	USN        string `json:"usn" binding:"required,usn"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Semester   int    `json:"semester" binding:"required,gte=1,lte=8"`
	Department string `json:"department" binding:"required"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   interface{}    `json:"students"`
	Pagination PaginationInfo `json:"pagination"`
}
