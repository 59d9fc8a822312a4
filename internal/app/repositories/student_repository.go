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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	exists, err := r.ExistsByUSN(ctx, student.USN)
	if err != nil {
		return fmt.Errorf("error checking student existence: %w", err)
	}
	if exists {
		return apperrors.ErrUSNAlreadyExists
	}

	query := `
		INSERT INTO students (usn, name, semester, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		student.USN, student.Name, student.Semester, student.Department).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, usn, name, semester, department
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.USN,
		&student.Name,
		&student.Semester,
		&student.Department,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves students with optional semester/department filters, paginated.
// semester <= 0 and an empty department disable the respective filter.
func (r *StudentRepository) GetAll(ctx context.Context, semester int, department string, offset uint64, limit int) ([]*models.Student, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	if semester > 0 {
		args = append(args, semester)
		where += fmt.Sprintf(" AND semester = $%d", len(args))
	}
	if department != "" {
		args = append(args, department)
		where += fmt.Sprintf(" AND department = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM students"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT id, usn, name, semester, department
		FROM students%s
		ORDER BY usn
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetBySemester retrieves all students of a semester in roster (USN) order
func (r *StudentRepository) GetBySemester(ctx context.Context, semester int) ([]*models.Student, error) {
	query := `
		SELECT id, usn, name, semester, department
		FROM students
		WHERE semester = $1
		ORDER BY usn
	`

	rows, err := r.db.Query(ctx, query, semester)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE usn = $1 AND id != $2)`,
		student.USN, student.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking USN uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrUSNAlreadyExists
	}

	query := `
		UPDATE students
		SET usn = $1, name = $2, semester = $3, department = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.USN, student.Name, student.Semester, student.Department, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ExistsByUSN checks if a student exists with the given USN
func (r *StudentRepository) ExistsByUSN(ctx context.Context, usn string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE usn = $1)`, usn).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.USN,
			&student.Name,
			&student.Semester,
			&student.Department,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
