package allocation

import (
	"sort"

	"github.com/samber/lo"

	"github.com/arjun/examhall/internal/app/models"
)

// Distribute partitions students across rooms under per-room capacity limits
// while spreading students of the same department as far apart as possible.
//
// Rooms are filled largest-capacity first (ties broken by room number
// ascending) so that late, smaller rooms absorb the remainder. Students are
// interleaved round-robin across department groups before filling; groups
// are cycled in alphabetical department-name order and each group keeps its
// input roster order, so the result is fully deterministic for identical
// input sequences.
//
// An empty student list is a degenerate success: every room comes back with
// an empty assignment list. If the combined capacity cannot seat everyone,
// Distribute fails with *InsufficientCapacityError and no partial result.
func Distribute(students []*models.Student, rooms []*models.Classroom) ([]*models.RoomAllocation, error) {
	if len(rooms) == 0 {
		if len(students) == 0 {
			return []*models.RoomAllocation{}, nil
		}
		return nil, ErrNoRooms
	}

	ordered := sortRoomsForFilling(rooms)
	interleaved := interleaveByDepartment(students)

	allocations := make([]*models.RoomAllocation, 0, len(ordered))
	next := 0
	for _, room := range ordered {
		seats := room.Capacity
		if remaining := len(interleaved) - next; seats > remaining {
			seats = remaining
		}
		if seats < 0 {
			seats = 0
		}

		assigned := make([]*models.Student, seats)
		copy(assigned, interleaved[next:next+seats])
		next += seats

		allocations = append(allocations, &models.RoomAllocation{
			ClassroomID:      room.ID,
			RoomNumber:       room.RoomNumber,
			Block:            room.Block,
			Capacity:         room.Capacity,
			StudentsAssigned: assigned,
			StaffAssigned:    []*models.Staff{},
		})
	}

	if next < len(interleaved) {
		return nil, &InsufficientCapacityError{Shortfall: len(interleaved) - next}
	}

	return allocations, nil
}

// sortRoomsForFilling returns rooms ordered by capacity descending, ties
// broken by room number ascending. The input slice is not modified.
func sortRoomsForFilling(rooms []*models.Classroom) []*models.Classroom {
	ordered := make([]*models.Classroom, len(rooms))
	copy(ordered, rooms)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Capacity != ordered[j].Capacity {
			return ordered[i].Capacity > ordered[j].Capacity
		}
		return ordered[i].RoomNumber < ordered[j].RoomNumber
	})
	return ordered
}

// interleaveByDepartment builds a single sequence where students are taken
// one at a time from each department group in turn. Exhausted groups are
// skipped without consuming a turn, so no two students of the same
// department end up adjacent unless one department outnumbers all others
// combined.
func interleaveByDepartment(students []*models.Student) []*models.Student {
	if len(students) == 0 {
		return nil
	}

	groups := lo.GroupBy(students, func(s *models.Student) string {
		return s.Department
	})

	departments := lo.Keys(groups)
	sort.Strings(departments)

	interleaved := make([]*models.Student, 0, len(students))
	cursors := make(map[string]int, len(departments))
	for len(interleaved) < len(students) {
		for _, dept := range departments {
			group := groups[dept]
			if cursors[dept] >= len(group) {
				continue
			}
			interleaved = append(interleaved, group[cursors[dept]])
			cursors[dept]++
		}
	}

	return interleaved
}
