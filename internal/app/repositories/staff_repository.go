package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/pkg/apperrors"
)

// StaffRepository handles database operations for staff members
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

// Create creates a new staff member
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (name, department, designation, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		staff.Name, staff.Department, staff.Designation, staff.IsAvailable).Scan(&staff.ID)
	if err != nil {
		return fmt.Errorf("error creating staff member: %w", err)
	}

	return nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	query := `
		SELECT id, name, department, designation, is_available
		FROM staff
		WHERE id = $1
	`

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Department,
		&staff.Designation,
		&staff.IsAvailable,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff member: %w", err)
	}

	return &staff, nil
}

// GetAll retrieves all staff members
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	query := `
		SELECT id, name, department, designation, is_available
		FROM staff
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}

// GetAvailable retrieves staff members eligible for invigilation duty.
// Pool order (ascending id) is the first-come assignment order.
func (r *StaffRepository) GetAvailable(ctx context.Context) ([]*models.Staff, error) {
	query := `
		SELECT id, name, department, designation, is_available
		FROM staff
		WHERE is_available = TRUE
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}

// Update updates an existing staff member
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	query := `
		UPDATE staff
		SET name = $1, department = $2, designation = $3, is_available = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		staff.Name, staff.Department, staff.Designation, staff.IsAvailable, staff.ID)
	if err != nil {
		return fmt.Errorf("error updating staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// Delete deletes a staff member by ID
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

func scanStaff(rows pgx.Rows) ([]*models.Staff, error) {
	var staff []*models.Staff
	for rows.Next() {
		var member models.Staff
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Department,
			&member.Designation,
			&member.IsAvailable,
		); err != nil {
			return nil, err
		}
		staff = append(staff, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staff, nil
}
