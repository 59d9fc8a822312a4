package allocation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/examhall/internal/app/models"
)

func makeStaff(count int) []*models.Staff {
	staff := make([]*models.Staff, 0, count)
	for i := 0; i < count; i++ {
		staff = append(staff, &models.Staff{
			ID:          int64(i + 1),
			Name:        fmt.Sprintf("Staff %d", i+1),
			Department:  "CSE",
			Designation: "Assistant Professor",
			IsAvailable: true,
		})
	}
	return staff
}

func roomWithStudents(id int64, count int) *models.RoomAllocation {
	students := make([]*models.Student, 0, count)
	for i := 0; i < count; i++ {
		students = append(students, &models.Student{ID: int64(id)*1000 + int64(i)})
	}
	return &models.RoomAllocation{
		ClassroomID:      id,
		RoomNumber:       fmt.Sprintf("%d01", id),
		Capacity:         count,
		StudentsAssigned: students,
		StaffAssigned:    []*models.Staff{},
	}
}

func TestInvigilatorsRequired(t *testing.T) {
	cases := []struct {
		students int
		want     int
	}{
		{0, 0},
		{1, 1},
		{29, 1},
		{30, 1},
		{31, 2},
		{60, 2},
		{61, 3},
		{90, 3},
		{91, 4},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d students", tc.students), func(t *testing.T) {
			assert.Equal(t, tc.want, InvigilatorsRequired(tc.students))
		})
	}
}

func TestAssignDuty_TieredStaffing(t *testing.T) {
	rooms := []*models.RoomAllocation{
		roomWithStudents(1, 45),
		roomWithStudents(2, 30),
		roomWithStudents(3, 0),
	}
	staff := makeStaff(5)

	staffed, err := AssignDuty(rooms, staff)
	require.NoError(t, err)
	require.Len(t, staffed, 3)

	assert.Len(t, staffed[0].StaffAssigned, 2)
	assert.Len(t, staffed[1].StaffAssigned, 1)
	assert.Empty(t, staffed[2].StaffAssigned)

	// First-come allocation: pool order is preserved.
	assert.Equal(t, int64(1), staffed[0].StaffAssigned[0].ID)
	assert.Equal(t, int64(2), staffed[0].StaffAssigned[1].ID)
	assert.Equal(t, int64(3), staffed[1].StaffAssigned[0].ID)
}

func TestAssignDuty_NoDoubleBooking(t *testing.T) {
	rooms := []*models.RoomAllocation{
		roomWithStudents(1, 60),
		roomWithStudents(2, 35),
		roomWithStudents(3, 10),
	}
	staff := makeStaff(10)

	staffed, err := AssignDuty(rooms, staff)
	require.NoError(t, err)

	seen := map[int64]bool{}
	for _, room := range staffed {
		for _, s := range room.StaffAssigned {
			assert.False(t, seen[s.ID], "staff %d assigned to more than one room", s.ID)
			seen[s.ID] = true
		}
	}
}

func TestAssignDuty_InsufficientStaff(t *testing.T) {
	rooms := []*models.RoomAllocation{roomWithStudents(1, 40)}
	staff := makeStaff(1)

	staffed, err := AssignDuty(rooms, staff)

	var staffErr *InsufficientStaffError
	require.ErrorAs(t, err, &staffErr)
	assert.Equal(t, 1, staffErr.Shortfall)
	assert.Equal(t, 0, staffErr.RoomIndex)

	// Partial result stays inspectable for the caller.
	require.Len(t, staffed, 1)
	assert.Len(t, staffed[0].StaffAssigned, 1)
}

func TestAssignDuty_ShortfallIsPoolDeficit(t *testing.T) {
	// A room may arrive with staff already attached; the reported
	// shortfall must still be how many the pool came up short.
	room := roomWithStudents(1, 35)
	room.StaffAssigned = append(room.StaffAssigned, &models.Staff{ID: 99, Name: "Preassigned"})

	_, err := AssignDuty([]*models.RoomAllocation{room}, nil)

	var staffErr *InsufficientStaffError
	require.ErrorAs(t, err, &staffErr)
	assert.Equal(t, 2, staffErr.Shortfall)
	assert.Equal(t, 0, staffErr.RoomIndex)
}

func TestAssignDuty_CompletedRoomsKeptOnFailure(t *testing.T) {
	rooms := []*models.RoomAllocation{
		roomWithStudents(1, 20),
		roomWithStudents(2, 50),
	}
	staff := makeStaff(2)

	_, err := AssignDuty(rooms, staff)

	var staffErr *InsufficientStaffError
	require.ErrorAs(t, err, &staffErr)
	assert.Equal(t, 1, staffErr.RoomIndex)
	assert.Equal(t, 1, staffErr.Shortfall)

	assert.Len(t, rooms[0].StaffAssigned, 1)
	assert.Len(t, rooms[1].StaffAssigned, 1)
}

func TestAssignDuty_DoesNotMutateStaffPool(t *testing.T) {
	rooms := []*models.RoomAllocation{roomWithStudents(1, 25)}
	staff := makeStaff(3)

	_, err := AssignDuty(rooms, staff)
	require.NoError(t, err)

	require.Len(t, staff, 3)
	for i, s := range staff {
		assert.Equal(t, int64(i+1), s.ID)
	}
}

func TestAssignDuty_EmptyRoomsNeedNoStaff(t *testing.T) {
	rooms := []*models.RoomAllocation{
		roomWithStudents(1, 0),
		roomWithStudents(2, 0),
	}

	staffed, err := AssignDuty(rooms, nil)
	require.NoError(t, err)
	for _, room := range staffed {
		assert.Empty(t, room.StaffAssigned)
	}
}
