package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/app/repositories"
	"github.com/arjun/examhall/internal/pkg/apperrors"
)

// ClassroomService handles classroom-related operations
type ClassroomService struct {
	classroomRepo *repositories.ClassroomRepository
}

// NewClassroomService creates a new classroom service instance
func NewClassroomService(classroomRepo *repositories.ClassroomRepository) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
	}
}

// validateClassroom validates classroom data before database operations
func (s *ClassroomService) validateClassroom(classroom *models.Classroom) error {
	if classroom == nil {
		return fmt.Errorf("%w: classroom is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(classroom.RoomNumber) == "" {
		return fmt.Errorf("%w: room number cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(classroom.Block) == "" {
		return fmt.Errorf("%w: block cannot be empty", apperrors.ErrValidationFailed)
	}

	if classroom.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateClassroom creates a new classroom
func (s *ClassroomService) CreateClassroom(ctx context.Context, classroom *models.Classroom) error {
	if err := s.validateClassroom(classroom); err != nil {
		return err
	}

	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		if apperrors.Is(err, apperrors.ErrClassroomAlreadyExists) {
			return err
		}
		return fmt.Errorf("error creating classroom: %w", err)
	}
	return nil
}

// GetClassroomByID retrieves a classroom by ID
func (s *ClassroomService) GetClassroomByID(ctx context.Context, id int64) (*models.Classroom, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	return s.classroomRepo.GetByID(ctx, id)
}

// GetAllClassrooms retrieves all classrooms
func (s *ClassroomService) GetAllClassrooms(ctx context.Context) ([]*models.Classroom, error) {
	classrooms, err := s.classroomRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classrooms: %w", err)
	}
	return classrooms, nil
}

// UpdateClassroom updates an existing classroom
func (s *ClassroomService) UpdateClassroom(ctx context.Context, classroom *models.Classroom) error {
	if err := s.validateClassroom(classroom); err != nil {
		return err
	}

	if classroom.ID <= 0 {
		return fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	if err := s.classroomRepo.Update(ctx, classroom); err != nil {
		if apperrors.Is(err, apperrors.ErrClassroomNotFound, apperrors.ErrClassroomAlreadyExists) {
			return err
		}
		return fmt.Errorf("error updating classroom: %w", err)
	}
	return nil
}

// DeleteClassroom deletes a classroom by ID
func (s *ClassroomService) DeleteClassroom(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	return s.classroomRepo.Delete(ctx, id)
}
