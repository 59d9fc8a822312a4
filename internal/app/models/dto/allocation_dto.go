package dto

// AllocationSummary accompanies a freshly generated allocation
type AllocationSummary struct {
	TotalStudents          int `json:"totalStudents" example:"182"`
	TotalStudentsAllocated int `json:"totalStudentsAllocated" example:"182"`
	TotalRoomsUsed         int `json:"totalRoomsUsed" example:"4"`
	TotalStaffAssigned     int `json:"totalStaffAssigned" example:"7"`
}

// GenerateAllocationResponse is the payload returned by the generate endpoint
type GenerateAllocationResponse struct {
	Allocation interface{}       `json:"allocation"`
	Summary    AllocationSummary `json:"summary"`
}
