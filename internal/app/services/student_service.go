package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/app/repositories"
	"github.com/arjun/examhall/internal/pkg/apperrors"
	"github.com/arjun/examhall/internal/pkg/validation"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidUSN(student.USN) {
		return fmt.Errorf("%w: USN must be 10 alphanumeric characters", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(student.Name) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	if !validation.IsValidSemester(student.Semester) {
		return fmt.Errorf("%w: semester must be between %d and %d",
			apperrors.ErrValidationFailed, validation.SemesterMin, validation.SemesterMax)
	}

	if strings.TrimSpace(student.Department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStudent creates a new student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	student.USN = validation.NormalizeUSN(student.USN)

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if apperrors.Is(err, apperrors.ErrUSNAlreadyExists) {
			return apperrors.ErrUSNAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves students with optional filters, paginated
func (s *StudentService) GetAllStudents(ctx context.Context, semester int, department string, offset uint64, limit int) ([]*models.Student, int64, error) {
	if semester != 0 && !validation.IsValidSemester(semester) {
		return nil, 0, fmt.Errorf("%w: semester filter must be between %d and %d",
			apperrors.ErrValidationFailed, validation.SemesterMin, validation.SemesterMax)
	}

	return s.studentRepo.GetAll(ctx, semester, department, offset, limit)
}

// UpdateStudent updates an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if student.ID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student.USN = validation.NormalizeUSN(student.USN)

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrUSNAlreadyExists) {
			return err
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent deletes a student by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.Delete(ctx, id)
}
