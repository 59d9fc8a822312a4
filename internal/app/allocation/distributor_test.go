package allocation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/examhall/internal/app/models"
)

func makeStudents(dept string, count int, startID int64) []*models.Student {
	students := make([]*models.Student, 0, count)
	for i := 0; i < count; i++ {
		id := startID + int64(i)
		students = append(students, &models.Student{
			ID:         id,
			USN:        fmt.Sprintf("4VV21%s%03d", dept[:2], id),
			Name:       fmt.Sprintf("%s Student %d", dept, i+1),
			Semester:   5,
			Department: dept,
		})
	}
	return students
}

func makeRoom(id int64, number string, capacity int) *models.Classroom {
	return &models.Classroom{ID: id, RoomNumber: number, Block: "A", Capacity: capacity}
}

func TestDistribute_InterleavesDepartments(t *testing.T) {
	students := append(makeStudents("CSE", 3, 1), makeStudents("ECE", 3, 4)...)
	rooms := []*models.Classroom{
		makeRoom(1, "101", 2),
		makeRoom(2, "102", 2),
		makeRoom(3, "103", 2),
	}

	allocations, err := Distribute(students, rooms)
	require.NoError(t, err)
	require.Len(t, allocations, 3)

	for _, room := range allocations {
		require.Len(t, room.StudentsAssigned, 2)
		assert.NotEqual(t, room.StudentsAssigned[0].Department, room.StudentsAssigned[1].Department,
			"room %s should mix departments", room.RoomNumber)
	}
}

func TestDistribute_FillsLargestRoomFirst(t *testing.T) {
	// All students fit into the 50-seat room; the 10-seat room stays empty.
	students := makeStudents("CSE", 10, 1)
	rooms := []*models.Classroom{
		makeRoom(1, "201", 10),
		makeRoom(2, "202", 50),
	}

	allocations, err := Distribute(students, rooms)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	assert.Equal(t, "202", allocations[0].RoomNumber)
	assert.Len(t, allocations[0].StudentsAssigned, 10)
	assert.Equal(t, "201", allocations[1].RoomNumber)
	assert.Empty(t, allocations[1].StudentsAssigned)
}

func TestDistribute_CapacityTieBrokenByRoomNumber(t *testing.T) {
	students := makeStudents("CSE", 2, 1)
	rooms := []*models.Classroom{
		makeRoom(1, "305", 30),
		makeRoom(2, "301", 30),
	}

	allocations, err := Distribute(students, rooms)
	require.NoError(t, err)
	assert.Equal(t, "301", allocations[0].RoomNumber)
	assert.Equal(t, "305", allocations[1].RoomNumber)
}

func TestDistribute_InsufficientCapacity(t *testing.T) {
	students := makeStudents("CSE", 6, 1)
	rooms := []*models.Classroom{makeRoom(1, "101", 5)}

	allocations, err := Distribute(students, rooms)
	assert.Nil(t, allocations)

	var capErr *InsufficientCapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 1, capErr.Shortfall)
}

func TestDistribute_NoStudentsIsDegenerateSuccess(t *testing.T) {
	rooms := []*models.Classroom{
		makeRoom(1, "101", 20),
		makeRoom(2, "102", 30),
	}

	allocations, err := Distribute(nil, rooms)
	require.NoError(t, err)
	require.Len(t, allocations, 2)
	for _, room := range allocations {
		assert.Empty(t, room.StudentsAssigned)
	}
}

func TestDistribute_NoRoomsWithStudentsFails(t *testing.T) {
	_, err := Distribute(makeStudents("CSE", 1, 1), nil)
	assert.ErrorIs(t, err, ErrNoRooms)
}

func TestDistribute_ConservationAndNoDuplication(t *testing.T) {
	students := append(makeStudents("CSE", 17, 1), makeStudents("ECE", 9, 18)...)
	students = append(students, makeStudents("MECH", 5, 27)...)
	rooms := []*models.Classroom{
		makeRoom(1, "101", 12),
		makeRoom(2, "102", 10),
		makeRoom(3, "103", 15),
	}

	allocations, err := Distribute(students, rooms)
	require.NoError(t, err)

	seen := map[int64]bool{}
	total := 0
	for _, room := range allocations {
		assert.LessOrEqual(t, len(room.StudentsAssigned), room.Capacity)
		for _, s := range room.StudentsAssigned {
			assert.False(t, seen[s.ID], "student %d assigned twice", s.ID)
			seen[s.ID] = true
			total++
		}
	}
	assert.Equal(t, len(students), total)
}

func TestDistribute_Deterministic(t *testing.T) {
	students := append(makeStudents("ECE", 8, 1), makeStudents("CSE", 11, 9)...)
	rooms := []*models.Classroom{
		makeRoom(1, "101", 10),
		makeRoom(2, "102", 10),
	}

	first, err := Distribute(students, rooms)
	require.NoError(t, err)
	second, err := Distribute(students, rooms)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ClassroomID, second[i].ClassroomID)
		require.Equal(t, len(first[i].StudentsAssigned), len(second[i].StudentsAssigned))
		for j := range first[i].StudentsAssigned {
			assert.Equal(t, first[i].StudentsAssigned[j].ID, second[i].StudentsAssigned[j].ID)
		}
	}
}

func TestInterleaveByDepartment_AlphabeticalCycle(t *testing.T) {
	students := append(makeStudents("ECE", 2, 1), makeStudents("CSE", 2, 3)...)

	interleaved := interleaveByDepartment(students)
	require.Len(t, interleaved, 4)

	// CSE sorts before ECE, so the cycle starts with CSE.
	assert.Equal(t, "CSE", interleaved[0].Department)
	assert.Equal(t, "ECE", interleaved[1].Department)
	assert.Equal(t, "CSE", interleaved[2].Department)
	assert.Equal(t, "ECE", interleaved[3].Department)
}

func TestInterleaveByDepartment_DominantDepartmentTail(t *testing.T) {
	// One department outnumbering the rest combined degenerates into a
	// same-department tail; this is accepted, not an error.
	students := append(makeStudents("CSE", 5, 1), makeStudents("ECE", 1, 6)...)

	interleaved := interleaveByDepartment(students)
	require.Len(t, interleaved, 6)
	assert.Equal(t, "CSE", interleaved[0].Department)
	assert.Equal(t, "ECE", interleaved[1].Department)
	for _, s := range interleaved[2:] {
		assert.Equal(t, "CSE", s.Department)
	}
}

func TestDistribute_DoesNotReorderInputRooms(t *testing.T) {
	rooms := []*models.Classroom{
		makeRoom(1, "101", 5),
		makeRoom(2, "102", 40),
	}

	_, err := Distribute(makeStudents("CSE", 3, 1), rooms)
	require.NoError(t, err)

	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "102", rooms[1].RoomNumber)
}
