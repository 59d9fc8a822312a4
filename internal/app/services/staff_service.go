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

// StaffService handles staff-related operations
type StaffService struct {
	staffRepo *repositories.StaffRepository
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo *repositories.StaffRepository) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
	}
}

// validateStaff validates staff data before database operations
func (s *StaffService) validateStaff(staff *models.Staff) error {
	if staff == nil {
		return fmt.Errorf("%w: staff is nil", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(staff.Name) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	if strings.TrimSpace(staff.Department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(staff.Designation) == "" {
		return fmt.Errorf("%w: designation cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStaff creates a new staff member
func (s *StaffService) CreateStaff(ctx context.Context, staff *models.Staff) error {
	if err := s.validateStaff(staff); err != nil {
		return err
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return fmt.Errorf("error creating staff member: %w", err)
	}
	return nil
}

// GetStaffByID retrieves a staff member by ID
func (s *StaffService) GetStaffByID(ctx context.Context, id int64) (*models.Staff, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}

	return s.staffRepo.GetByID(ctx, id)
}

// GetAllStaff retrieves all staff, optionally only those available for duty
func (s *StaffService) GetAllStaff(ctx context.Context, availableOnly bool) ([]*models.Staff, error) {
	if availableOnly {
		return s.staffRepo.GetAvailable(ctx)
	}
	return s.staffRepo.GetAll(ctx)
}

// UpdateStaff updates an existing staff member, including the availability flag
func (s *StaffService) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	if err := s.validateStaff(staff); err != nil {
		return err
	}

	if staff.ID <= 0 {
		return fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		if apperrors.Is(err, apperrors.ErrStaffNotFound) {
			return err
		}
		return fmt.Errorf("error updating staff member: %w", err)
	}
	return nil
}

// DeleteStaff deletes a staff member by ID
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}

	return s.staffRepo.Delete(ctx, id)
}
