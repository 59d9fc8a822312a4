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

// ExamRepository handles database operations for CIA exams
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
	}
}

// Create creates a new exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (exam_name, date, semester)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		exam.ExamName, exam.Date, exam.Semester).Scan(&exam.ID)
	if err != nil {
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := `
		SELECT id, exam_name, date, semester
		FROM exams
		WHERE id = $1
	`

	var exam models.Exam
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exam.ID,
		&exam.ExamName,
		&exam.Date,
		&exam.Semester,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}

	return &exam, nil
}

// GetAll retrieves all exams, most recent first
func (r *ExamRepository) GetAll(ctx context.Context) ([]*models.Exam, error) {
	query := `
		SELECT id, exam_name, date, semester
		FROM exams
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		var exam models.Exam
		if err := rows.Scan(
			&exam.ID,
			&exam.ExamName,
			&exam.Date,
			&exam.Semester,
		); err != nil {
			return nil, err
		}
		exams = append(exams, &exam)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exams, nil
}

// Update updates an existing exam
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exams
		SET exam_name = $1, date = $2, semester = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		exam.ExamName, exam.Date, exam.Semester, exam.ID)
	if err != nil {
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// Delete deletes an exam by ID
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}
