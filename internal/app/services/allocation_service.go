package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/arjun/examhall/internal/app/allocation"
	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/pkg/apperrors"
)

// Collaborator contracts of the allocation orchestrator. The pgx
// repositories satisfy them in production; tests substitute in-memory fakes.

// ExamStore loads exams by identity
type ExamStore interface {
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
}

// StudentLister supplies the roster for a semester in stable order
type StudentLister interface {
	GetBySemester(ctx context.Context, semester int) ([]*models.Student, error)
}

// ClassroomLister supplies all classrooms
type ClassroomLister interface {
	GetAll(ctx context.Context) ([]*models.Classroom, error)
}

// StaffLister supplies the available staff pool in assignment order
type StaffLister interface {
	GetAvailable(ctx context.Context) ([]*models.Staff, error)
}

// AllocationStore persists and retrieves generated allocations
type AllocationStore interface {
	Save(ctx context.Context, allocation *models.Allocation) error
	ExistsByExamID(ctx context.Context, examID int64) (bool, error)
	GetByExamID(ctx context.Context, examID int64) (*models.Allocation, error)
	GetAll(ctx context.Context) ([]*models.Allocation, error)
	Delete(ctx context.Context, id int64) error
}

// AllocationService orchestrates seating and duty generation for one exam
type AllocationService struct {
	examStore       ExamStore
	studentLister   StudentLister
	classroomLister ClassroomLister
	staffLister     StaffLister
	allocationStore AllocationStore
	logger          zerolog.Logger
}

// NewAllocationService creates a new allocation service instance
func NewAllocationService(
	examStore ExamStore,
	studentLister StudentLister,
	classroomLister ClassroomLister,
	staffLister StaffLister,
	allocationStore AllocationStore,
	logger zerolog.Logger,
) *AllocationService {
	return &AllocationService{
		examStore:       examStore,
		studentLister:   studentLister,
		classroomLister: classroomLister,
		staffLister:     staffLister,
		allocationStore: allocationStore,
		logger:          logger,
	}
}

// Generate runs the allocation engine for one exam and persists the result.
//
// The computation is deterministic for identical input sequences, but every
// successful call creates a new stored allocation; a second call for the
// same exam is rejected with ErrAllocationAlreadyExists until the existing
// record is deleted.
func (s *AllocationService) Generate(ctx context.Context, examID int64) (*models.Allocation, error) {
	if examID <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	exam, err := s.examStore.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	exists, err := s.allocationStore.ExistsByExamID(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing allocation: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAllocationAlreadyExists
	}

	students, err := s.studentLister.GetBySemester(ctx, exam.Semester)
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoEligibleStudents
	}

	classrooms, err := s.classroomLister.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading classrooms: %w", err)
	}
	if len(classrooms) == 0 {
		return nil, apperrors.ErrNoClassrooms
	}

	roomAllocations, err := allocation.Distribute(students, classrooms)
	if err != nil {
		return nil, err
	}

	availableStaff, err := s.staffLister.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading staff: %w", err)
	}

	roomAllocations, err = allocation.AssignDuty(roomAllocations, availableStaff)
	if err != nil {
		return nil, err
	}

	result := &models.Allocation{
		ExamID:          exam.ID,
		Exam:            exam,
		RoomAllocations: roomAllocations,
		TotalStudentsAllocated: lo.SumBy(roomAllocations, func(r *models.RoomAllocation) int {
			return len(r.StudentsAssigned)
		}),
		TotalRoomsUsed: lo.CountBy(roomAllocations, func(r *models.RoomAllocation) bool {
			return len(r.StudentsAssigned) > 0
		}),
	}

	if err := s.allocationStore.Save(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("examId", exam.ID).
		Int("students", result.TotalStudentsAllocated).
		Int("roomsUsed", result.TotalRoomsUsed).
		Msg("Allocation generated")

	return result, nil
}

// GetAllAllocations retrieves all allocations, newest first
func (s *AllocationService) GetAllAllocations(ctx context.Context) ([]*models.Allocation, error) {
	allocations, err := s.allocationStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving allocations: %w", err)
	}
	return allocations, nil
}

// GetAllocationByExam retrieves the fully populated allocation for an exam
func (s *AllocationService) GetAllocationByExam(ctx context.Context, examID int64) (*models.Allocation, error) {
	if examID <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	return s.allocationStore.GetByExamID(ctx, examID)
}

// DeleteAllocation deletes an allocation by ID, making regeneration possible
func (s *AllocationService) DeleteAllocation(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid allocation ID", apperrors.ErrValidationFailed)
	}

	return s.allocationStore.Delete(ctx, id)
}
