package entity

// Button is an interactive reply option bound to an action
type Button struct {
	Label  string
	Action Action
}

// Reply is a transport-neutral outbound message. Each adapter renders the
// button rows with its own keyboard primitives.
type Reply struct {
	Text    string
	Buttons [][]Button
}

func (r Reply) HasButtons() bool {
	return len(r.Buttons) > 0
}

// ChecklistItem is one entry of a shift together with its completion mark
type ChecklistItem struct {
	Entry ScheduleEntry
	Done  bool
}

// ShiftStatus is the read-only view of a user's shift
type ShiftStatus struct {
	Shift Shift
	Title string
	Armed bool
	Items []ChecklistItem
}

// DoneCount returns how many items are marked done
func (s ShiftStatus) DoneCount() int {
	count := 0
	for _, item := range s.Items {
		if item.Done {
			count++
		}
	}
	return count
}
