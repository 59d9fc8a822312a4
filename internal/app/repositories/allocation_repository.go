package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/db"
	"github.com/arjun/examhall/internal/pkg/apperrors"
)

const pgUniqueViolation = "23505"

// AllocationRepository handles database operations for generated allocations
type AllocationRepository struct {
	db *pgxpool.Pool
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{
		db: db,
	}
}

// Save stores an allocation with all its room assignments in one transaction
// and fills the generated identity and timestamps. Room, student and staff
// ordering is preserved through position columns.
func (r *AllocationRepository) Save(ctx context.Context, allocation *models.Allocation) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return r.saveTx(ctx, tx, allocation)
	})
}

func (r *AllocationRepository) saveTx(ctx context.Context, tx pgx.Tx, allocation *models.Allocation) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO allocations (exam_id, total_students_allocated, total_rooms_used)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		allocation.ExamID,
		allocation.TotalStudentsAllocated,
		allocation.TotalRoomsUsed,
	).Scan(&allocation.ID, &allocation.CreatedAt, &allocation.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrAllocationAlreadyExists
		}
		return fmt.Errorf("error storing allocation: %w", err)
	}

	for pos, room := range allocation.RoomAllocations {
		var roomID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO allocation_rooms (allocation_id, classroom_id, room_number, block, capacity, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			allocation.ID, room.ClassroomID, room.RoomNumber, room.Block, room.Capacity, pos,
		).Scan(&roomID)
		if err != nil {
			return fmt.Errorf("error storing room allocation: %w", err)
		}

		for i, student := range room.StudentsAssigned {
			if _, err := tx.Exec(ctx, `
				INSERT INTO allocation_room_students (allocation_room_id, student_id, position)
				VALUES ($1, $2, $3)`,
				roomID, student.ID, i,
			); err != nil {
				return fmt.Errorf("error storing student assignment: %w", err)
			}
		}

		for i, staff := range room.StaffAssigned {
			if _, err := tx.Exec(ctx, `
				INSERT INTO allocation_room_staff (allocation_room_id, staff_id, position)
				VALUES ($1, $2, $3)`,
				roomID, staff.ID, i,
			); err != nil {
				return fmt.Errorf("error storing staff assignment: %w", err)
			}
		}
	}

	return nil
}

// ExistsByExamID checks whether an allocation already exists for an exam
func (r *AllocationRepository) ExistsByExamID(ctx context.Context, examID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM allocations WHERE exam_id = $1)`, examID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking allocation existence: %w", err)
	}
	return exists, nil
}

// GetAll retrieves all allocations, newest first, with exam summaries but
// without room-level detail.
func (r *AllocationRepository) GetAll(ctx context.Context) ([]*models.Allocation, error) {
	query := `
		SELECT a.id, a.exam_id, a.total_students_allocated, a.total_rooms_used,
		       a.created_at, a.updated_at,
		       e.id, e.exam_name, e.date, e.semester
		FROM allocations a
		JOIN exams e ON e.id = a.exam_id
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []*models.Allocation
	for rows.Next() {
		var allocation models.Allocation
		var exam models.Exam
		if err := rows.Scan(
			&allocation.ID,
			&allocation.ExamID,
			&allocation.TotalStudentsAllocated,
			&allocation.TotalRoomsUsed,
			&allocation.CreatedAt,
			&allocation.UpdatedAt,
			&exam.ID,
			&exam.ExamName,
			&exam.Date,
			&exam.Semester,
		); err != nil {
			return nil, err
		}
		allocation.Exam = &exam
		allocations = append(allocations, &allocation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return allocations, nil
}

// GetByExamID retrieves the allocation for an exam with rooms, students and
// staff fully populated in stored order.
func (r *AllocationRepository) GetByExamID(ctx context.Context, examID int64) (*models.Allocation, error) {
	var allocation models.Allocation
	var exam models.Exam
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.exam_id, a.total_students_allocated, a.total_rooms_used,
		       a.created_at, a.updated_at,
		       e.id, e.exam_name, e.date, e.semester
		FROM allocations a
		JOIN exams e ON e.id = a.exam_id
		WHERE a.exam_id = $1`,
		examID,
	).Scan(
		&allocation.ID,
		&allocation.ExamID,
		&allocation.TotalStudentsAllocated,
		&allocation.TotalRoomsUsed,
		&allocation.CreatedAt,
		&allocation.UpdatedAt,
		&exam.ID,
		&exam.ExamName,
		&exam.Date,
		&exam.Semester,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("error retrieving allocation: %w", err)
	}
	allocation.Exam = &exam

	rooms, roomIDs, err := r.loadRooms(ctx, allocation.ID)
	if err != nil {
		return nil, err
	}

	if err := r.loadRoomStudents(ctx, rooms, roomIDs); err != nil {
		return nil, err
	}
	if err := r.loadRoomStaff(ctx, rooms, roomIDs); err != nil {
		return nil, err
	}

	allocation.RoomAllocations = make([]*models.RoomAllocation, 0, len(roomIDs))
	for _, id := range roomIDs {
		allocation.RoomAllocations = append(allocation.RoomAllocations, rooms[id])
	}

	return &allocation, nil
}

// Delete deletes an allocation by ID; room rows cascade
func (r *AllocationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM allocations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting allocation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAllocationNotFound
	}

	return nil
}

func (r *AllocationRepository) loadRooms(ctx context.Context, allocationID int64) (map[int64]*models.RoomAllocation, []int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, classroom_id, room_number, block, capacity
		FROM allocation_rooms
		WHERE allocation_id = $1
		ORDER BY position`,
		allocationID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	rooms := make(map[int64]*models.RoomAllocation)
	var order []int64
	for rows.Next() {
		var roomID int64
		room := &models.RoomAllocation{
			StudentsAssigned: []*models.Student{},
			StaffAssigned:    []*models.Staff{},
		}
		if err := rows.Scan(&roomID, &room.ClassroomID, &room.RoomNumber, &room.Block, &room.Capacity); err != nil {
			return nil, nil, err
		}
		rooms[roomID] = room
		order = append(order, roomID)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return rooms, order, nil
}

func (r *AllocationRepository) loadRoomStudents(ctx context.Context, rooms map[int64]*models.RoomAllocation, roomIDs []int64) error {
	if len(roomIDs) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT ars.allocation_room_id, s.id, s.usn, s.name, s.semester, s.department
		FROM allocation_room_students ars
		JOIN students s ON s.id = ars.student_id
		WHERE ars.allocation_room_id = ANY($1)
		ORDER BY ars.allocation_room_id, ars.position`,
		roomIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var roomID int64
		var student models.Student
		if err := rows.Scan(&roomID, &student.ID, &student.USN, &student.Name, &student.Semester, &student.Department); err != nil {
			return err
		}
		if room, ok := rooms[roomID]; ok {
			room.StudentsAssigned = append(room.StudentsAssigned, &student)
		}
	}

	return rows.Err()
}

func (r *AllocationRepository) loadRoomStaff(ctx context.Context, rooms map[int64]*models.RoomAllocation, roomIDs []int64) error {
	if len(roomIDs) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT ars.allocation_room_id, st.id, st.name, st.department, st.designation, st.is_available
		FROM allocation_room_staff ars
		JOIN staff st ON st.id = ars.staff_id
		WHERE ars.allocation_room_id = ANY($1)
		ORDER BY ars.allocation_room_id, ars.position`,
		roomIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var roomID int64
		var staff models.Staff
		if err := rows.Scan(&roomID, &staff.ID, &staff.Name, &staff.Department, &staff.Designation, &staff.IsAvailable); err != nil {
			return err
		}
		if room, ok := rooms[roomID]; ok {
			room.StaffAssigned = append(room.StaffAssigned, &staff)
		}
	}

	return rows.Err()
}
