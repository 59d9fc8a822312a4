package allocation

import (
	"github.com/arjun/examhall/internal/app/models"
)

// StudentsPerInvigilator is the tier size of the duty policy: one
// invigilator per 30 assigned students, or fraction thereof.
const StudentsPerInvigilator = 30

// InvigilatorsRequired returns the number of invigilators a room needs for
// the given assigned student count. Empty rooms need none.
func InvigilatorsRequired(studentCount int) int {
	if studentCount <= 0 {
		return 0
	}
	return (studentCount + StudentsPerInvigilator - 1) / StudentsPerInvigilator
}

// AssignDuty staffs each room allocation with invigilators drawn from the
// front of the available staff pool, in distributor output order. The
// required count per room depends on the room's assigned student count, not
// its raw capacity. A staff member is never assigned to more than one room.
//
// The input staff slice is never mutated; consumption happens on a local
// cursor. If the pool runs out mid-assignment, AssignDuty fails with
// *InsufficientStaffError. Rooms staffed before the failing one keep their
// assignments, so the caller can inspect (but should not persist) the
// partial result.
func AssignDuty(roomAllocations []*models.RoomAllocation, availableStaff []*models.Staff) ([]*models.RoomAllocation, error) {
	next := 0
	for i, room := range roomAllocations {
		needed := InvigilatorsRequired(len(room.StudentsAssigned))
		if remaining := len(availableStaff) - next; needed > remaining {
			// Shortfall is the pool deficit, independent of whatever the
			// room already holds.
			room.StaffAssigned = appendStaff(room.StaffAssigned, availableStaff[next:])
			return roomAllocations, &InsufficientStaffError{
				Shortfall: needed - remaining,
				RoomIndex: i,
			}
		}

		room.StaffAssigned = appendStaff(room.StaffAssigned, availableStaff[next:next+needed])
		next += needed
	}

	return roomAllocations, nil
}

func appendStaff(dst []*models.Staff, src []*models.Staff) []*models.Staff {
	if dst == nil {
		dst = make([]*models.Staff, 0, len(src))
	}
	return append(dst, src...)
}
