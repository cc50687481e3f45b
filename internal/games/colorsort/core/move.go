package core

// Outcome tells the caller what a SelectBase call did.
type Outcome uint8

const (
	// OutcomeIgnored: nothing changed (empty base or unknown index).
	OutcomeIgnored Outcome = iota
	// OutcomeSelected: the top run of the base is now selected.
	OutcomeSelected
	// OutcomeCancelled: the source base was chosen again; selection dropped.
	OutcomeCancelled
	// OutcomeMoved: objects were transferred and recorded for undo.
	OutcomeMoved
	// OutcomeRejected: the target could not take the run; selection dropped.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Mutated reports whether the board stacks changed.
func (o Outcome) Mutated() bool {
	return o == OutcomeMoved
}

// SelectBase applies one base-selection event.
//
// With no selection, a non-empty base gets its top run selected. With a
// selection, choosing the source again cancels it; choosing another base
// moves min(free space, run length) objects if the target is empty or shows
// the run's color on top. Either way the selection ends. A move that only
// partially fits leaves the remainder on the source, unselected.
func (s *Session) SelectBase(i int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.board.Base(i)
	if target == nil {
		return OutcomeIgnored
	}

	if s.selection == nil {
		if target.IsEmpty() {
			return OutcomeIgnored
		}
		s.selection = &Selection{Base: i, Count: target.TopRun()}
		return OutcomeSelected
	}

	sel := *s.selection
	s.selection = nil
	if sel.Base == i {
		return OutcomeCancelled
	}

	source := &s.board.bases[sel.Base]
	color, _ := source.Top()
	if !target.accepts(color) {
		return OutcomeRejected
	}

	moved := transfer(source, target, min(target.FreeSpace(), sel.Count))
	if moved == 0 {
		return OutcomeRejected
	}
	s.last = &MoveRecord{Source: sel.Base, Target: i, Count: moved}
	return OutcomeMoved
}
