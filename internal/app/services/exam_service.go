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

// ExamService handles CIA exam-related operations
type ExamService struct {
	examRepo *repositories.ExamRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo *repositories.ExamRepository) *ExamService {
	return &ExamService{
		examRepo: examRepo,
	}
}

// validateExam validates exam data before database operations
func (s *ExamService) validateExam(exam *models.Exam) error {
	if exam == nil {
		return fmt.Errorf("%w: exam is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(exam.ExamName) == "" {
		return fmt.Errorf("%w: exam name cannot be empty", apperrors.ErrValidationFailed)
	}

	if exam.Date.IsZero() {
		return fmt.Errorf("%w: exam date is required", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidSemester(exam.Semester) {
		return fmt.Errorf("%w: semester must be between %d and %d",
			apperrors.ErrValidationFailed, validation.SemesterMin, validation.SemesterMax)
	}

	return nil
}

// CreateExam creates a new exam
func (s *ExamService) CreateExam(ctx context.Context, exam *models.Exam) error {
	if err := s.validateExam(exam); err != nil {
		return err
	}

	if err := s.examRepo.Create(ctx, exam); err != nil {
		return fmt.Errorf("error creating exam: %w", err)
	}
	return nil
}

// GetExamByID retrieves an exam by ID
func (s *ExamService) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	return s.examRepo.GetByID(ctx, id)
}

// GetAllExams retrieves all exams
func (s *ExamService) GetAllExams(ctx context.Context) ([]*models.Exam, error) {
	exams, err := s.examRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving exams: %w", err)
	}
	return exams, nil
}

// UpdateExam updates an existing exam
func (s *ExamService) UpdateExam(ctx context.Context, exam *models.Exam) error {
	if err := s.validateExam(exam); err != nil {
		return err
	}

	if exam.ID <= 0 {
		return fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		if apperrors.Is(err, apperrors.ErrExamNotFound) {
			return err
		}
		return fmt.Errorf("error updating exam: %w", err)
	}
	return nil
}

// DeleteExam deletes an exam by ID
func (s *ExamService) DeleteExam(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}

	return s.examRepo.Delete(ctx, id)
}
