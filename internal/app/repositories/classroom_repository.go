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

// ClassroomRepository handles database operations for classrooms
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{
		db: db,
	}
}

// Create creates a new classroom
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM classrooms WHERE room_number = $1 AND block = $2)`,
		classroom.RoomNumber, classroom.Block).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking classroom existence: %w", err)
	}
	if exists {
		return apperrors.ErrClassroomAlreadyExists
	}

	query := `
		INSERT INTO classrooms (room_number, block, capacity)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		classroom.RoomNumber, classroom.Block, classroom.Capacity).Scan(&classroom.ID)
	if err != nil {
		return fmt.Errorf("error creating classroom: %w", err)
	}

	return nil
}

// GetByID retrieves a classroom by ID
func (r *ClassroomRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := `
		SELECT id, room_number, block, capacity
		FROM classrooms
		WHERE id = $1
	`

	var classroom models.Classroom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&classroom.ID,
		&classroom.RoomNumber,
		&classroom.Block,
		&classroom.Capacity,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error retrieving classroom: %w", err)
	}

	return &classroom, nil
}

// GetAll retrieves all classrooms
func (r *ClassroomRepository) GetAll(ctx context.Context) ([]*models.Classroom, error) {
	query := `
		SELECT id, room_number, block, capacity
		FROM classrooms
		ORDER BY block, room_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []*models.Classroom
	for rows.Next() {
		var classroom models.Classroom
		if err := rows.Scan(
			&classroom.ID,
			&classroom.RoomNumber,
			&classroom.Block,
			&classroom.Capacity,
		); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, &classroom)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classrooms, nil
}

// Update updates an existing classroom
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM classrooms WHERE room_number = $1 AND block = $2 AND id != $3)`,
		classroom.RoomNumber, classroom.Block, classroom.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking classroom uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrClassroomAlreadyExists
	}

	query := `
		UPDATE classrooms
		SET room_number = $1, block = $2, capacity = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		classroom.RoomNumber, classroom.Block, classroom.Capacity, classroom.ID)
	if err != nil {
		return fmt.Errorf("error updating classroom: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}

	return nil
}

// Delete deletes a classroom by ID
func (r *ClassroomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classrooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting classroom: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}

	return nil
}
