package allocation

import (
	"errors"
	"fmt"
)

// ErrNoRooms is returned when students need to be seated but no rooms were given.
var ErrNoRooms = errors.New("no rooms to distribute students into")

// InsufficientCapacityError is returned by Distribute when the combined room
// capacity cannot seat every student. Shortfall is the number of students
// left without a seat.
type InsufficientCapacityError struct {
	Shortfall int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: %d student(s) could not be seated", e.Shortfall)
}

// InsufficientStaffError is returned by AssignDuty when the available staff
// pool runs out before every room is fully staffed. RoomIndex is the index
// (in distributor output order) of the first room that could not be fully
// staffed; Shortfall is the number of invigilators missing for that room.
type InsufficientStaffError struct {
	Shortfall int
	RoomIndex int
}

func (e *InsufficientStaffError) Error() string {
	return fmt.Sprintf("insufficient staff: room at index %d needs %d more invigilator(s)", e.RoomIndex, e.Shortfall)
}
