package services

// Services defined in this package:
// - StudentService: student roster CRUD with USN validation
// - StaffService: staff pool CRUD and availability management
// - ClassroomService: classroom CRUD with capacity validation
// - ExamService: CIA exam CRUD
// - AllocationService: the allocation orchestrator; coordinates the seat
//   distributor and duty assigner for one exam and persists the result
