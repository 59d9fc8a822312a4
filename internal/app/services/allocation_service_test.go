package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/examhall/internal/app/allocation"
	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/pkg/apperrors"
)

// fakeRoster is an in-memory stand-in for the pgx repositories.
type fakeRoster struct {
	exams      map[int64]*models.Exam
	students   []*models.Student
	classrooms []*models.Classroom
	staff      []*models.Staff

	saved     []*models.Allocation
	saveErr   error
	nextAlloc int64
}

func (f *fakeRoster) GetByID(_ context.Context, id int64) (*models.Exam, error) {
	exam, ok := f.exams[id]
	if !ok {
		return nil, apperrors.ErrExamNotFound
	}
	return exam, nil
}

func (f *fakeRoster) GetBySemester(_ context.Context, semester int) ([]*models.Student, error) {
	var eligible []*models.Student
	for _, s := range f.students {
		if s.Semester == semester {
			eligible = append(eligible, s)
		}
	}
	return eligible, nil
}

func (f *fakeRoster) GetAll(_ context.Context) ([]*models.Classroom, error) {
	return f.classrooms, nil
}

func (f *fakeRoster) GetAvailable(_ context.Context) ([]*models.Staff, error) {
	var available []*models.Staff
	for _, s := range f.staff {
		if s.IsAvailable {
			available = append(available, s)
		}
	}
	return available, nil
}

func (f *fakeRoster) Save(_ context.Context, a *models.Allocation) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.nextAlloc++
	a.ID = f.nextAlloc
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeRoster) ExistsByExamID(_ context.Context, examID int64) (bool, error) {
	for _, a := range f.saved {
		if a.ExamID == examID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoster) GetByExamID(_ context.Context, examID int64) (*models.Allocation, error) {
	for _, a := range f.saved {
		if a.ExamID == examID {
			return a, nil
		}
	}
	return nil, apperrors.ErrAllocationNotFound
}

func (f *fakeRoster) GetAllAllocations(_ context.Context) ([]*models.Allocation, error) {
	return f.saved, nil
}

func (f *fakeRoster) Delete(_ context.Context, id int64) error {
	for i, a := range f.saved {
		if a.ID == id {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrAllocationNotFound
}

// allocationLister adapts fakeRoster's allocation listing to the
// AllocationStore interface (GetAll collides with the classroom method).
type allocationLister struct{ *fakeRoster }

func (l allocationLister) GetAll(ctx context.Context) ([]*models.Allocation, error) {
	return l.fakeRoster.GetAllAllocations(ctx)
}

func newService(f *fakeRoster) *AllocationService {
	return NewAllocationService(f, f, f, f, allocationLister{f}, zerolog.Nop())
}

func newFakeRoster() *fakeRoster {
	f := &fakeRoster{
		exams: map[int64]*models.Exam{
			1: {ID: 1, ExamName: "CIA-2 October 2025", Date: time.Now(), Semester: 5},
		},
	}
	for i := 0; i < 20; i++ {
		dept := "CSE"
		if i%2 == 1 {
			dept = "ECE"
		}
		f.students = append(f.students, &models.Student{
			ID:         int64(i + 1),
			USN:        fmt.Sprintf("4VV21XX%03d", i+1),
			Name:       fmt.Sprintf("Student %d", i+1),
			Semester:   5,
			Department: dept,
		})
	}
	f.classrooms = []*models.Classroom{
		{ID: 1, RoomNumber: "101", Block: "A", Capacity: 12},
		{ID: 2, RoomNumber: "102", Block: "A", Capacity: 10},
	}
	for i := 0; i < 3; i++ {
		f.staff = append(f.staff, &models.Staff{
			ID:          int64(i + 1),
			Name:        fmt.Sprintf("Staff %d", i+1),
			Department:  "CSE",
			Designation: "Assistant Professor",
			IsAvailable: true,
		})
	}
	return f
}

func TestGenerate_Success(t *testing.T) {
	f := newFakeRoster()
	svc := newService(f)

	result, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, int64(1), result.ExamID)
	assert.NotZero(t, result.ID)
	assert.Equal(t, 20, result.TotalStudentsAllocated)
	assert.Equal(t, 2, result.TotalRoomsUsed)
	require.Len(t, f.saved, 1)

	// Largest room first, invigilators follow assigned headcount.
	require.Len(t, result.RoomAllocations, 2)
	assert.Equal(t, 12, result.RoomAllocations[0].Capacity)
	assert.Len(t, result.RoomAllocations[0].StudentsAssigned, 12)
	assert.Len(t, result.RoomAllocations[0].StaffAssigned, 1)
	assert.Len(t, result.RoomAllocations[1].StudentsAssigned, 8)
	assert.Len(t, result.RoomAllocations[1].StaffAssigned, 1)
}

func TestGenerate_ExamNotFound(t *testing.T) {
	svc := newService(newFakeRoster())

	_, err := svc.Generate(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
}

func TestGenerate_NoEligibleStudents(t *testing.T) {
	f := newFakeRoster()
	f.exams[2] = &models.Exam{ID: 2, ExamName: "CIA-1", Date: time.Now(), Semester: 3}
	svc := newService(f)

	_, err := svc.Generate(context.Background(), 2)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleStudents)
}

func TestGenerate_NoClassrooms(t *testing.T) {
	f := newFakeRoster()
	f.classrooms = nil
	svc := newService(f)

	_, err := svc.Generate(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrNoClassrooms)
}

func TestGenerate_PropagatesInsufficientCapacity(t *testing.T) {
	f := newFakeRoster()
	f.classrooms = []*models.Classroom{{ID: 1, RoomNumber: "101", Block: "A", Capacity: 15}}
	svc := newService(f)

	_, err := svc.Generate(context.Background(), 1)

	var capErr *allocation.InsufficientCapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 5, capErr.Shortfall)
	assert.Empty(t, f.saved, "failed generation must not persist")
}

func TestGenerate_PropagatesInsufficientStaff(t *testing.T) {
	f := newFakeRoster()
	// 35 students in one room need two invigilators; only one is available.
	for i := 20; i < 35; i++ {
		f.students = append(f.students, &models.Student{
			ID:         int64(i + 1),
			USN:        fmt.Sprintf("4VV21XX%03d", i+1),
			Name:       fmt.Sprintf("Student %d", i+1),
			Semester:   5,
			Department: "MECH",
		})
	}
	f.staff = f.staff[:1]
	f.classrooms = []*models.Classroom{{ID: 1, RoomNumber: "101", Block: "A", Capacity: 60}}
	svc := newService(f)

	_, err := svc.Generate(context.Background(), 1)

	var staffErr *allocation.InsufficientStaffError
	require.ErrorAs(t, err, &staffErr)
	assert.Equal(t, 1, staffErr.Shortfall)
	assert.Equal(t, 0, staffErr.RoomIndex)
	assert.Empty(t, f.saved, "failed generation must not persist")
}

func TestGenerate_UnavailableStaffAreIgnored(t *testing.T) {
	f := newFakeRoster()
	for _, s := range f.staff {
		s.IsAvailable = false
	}
	svc := newService(f)

	_, err := svc.Generate(context.Background(), 1)

	var staffErr *allocation.InsufficientStaffError
	require.ErrorAs(t, err, &staffErr)
}

func TestGenerate_RejectsRegeneration(t *testing.T) {
	f := newFakeRoster()
	svc := newService(f)

	_, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrAllocationAlreadyExists)
}

func TestGenerate_RegenerationAfterDelete(t *testing.T) {
	f := newFakeRoster()
	svc := newService(f)

	first, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAllocation(context.Background(), first.ID))

	second, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetAllocationByExam_NotFound(t *testing.T) {
	svc := newService(newFakeRoster())

	_, err := svc.GetAllocationByExam(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrAllocationNotFound)
}
