package core

import (
	"errors"
	"fmt"
	"sort"
)

// Validation codes reported by ValidateLevel.
const (
	CodeInvalidDefinition = "INVALID_DEFINITION"
	CodeNoBases           = "NO_BASES"
	CodeAlreadySolved     = "ALREADY_SOLVED"
	CodeNotSolvable       = "NOT_SOLVABLE"
	CodeSolveLimit        = "SOLVE_LIMIT"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidateLevel checks that a definition is well formed, has at least one
// base, is not solved from the start and can be solved within limit states.
// On success it returns the shortest solution.
func ValidateLevel(def Definition, limit int) (Solution, error) {
	board, err := NewBoard(def)
	if err != nil {
		return Solution{}, ValidationError{Code: CodeInvalidDefinition, Message: err.Error(), Err: err}
	}
	if board.Len() == 0 {
		return Solution{}, ValidationError{Code: CodeNoBases, Message: "level has no bases"}
	}
	if IsComplete(board) {
		return Solution{}, ValidationError{Code: CodeAlreadySolved, Message: "level is solved before the first move"}
	}

	sol, err := Solve(board, limit)
	switch {
	case errors.Is(err, ErrUnsolvable):
		return sol, ValidationError{
			Code:    CodeNotSolvable,
			Message: fmt.Sprintf("no solution after exploring %d states", sol.Explored),
			Err:     err,
		}
	case errors.Is(err, ErrSolveLimit):
		return sol, ValidationError{
			Code:    CodeSolveLimit,
			Message: fmt.Sprintf("gave up after %d states", sol.Explored),
			Err:     err,
		}
	case err != nil:
		return sol, err
	}
	return sol, nil
}

// Stats summarizes a board for listings.
type Stats struct {
	Bases    int
	Objects  int
	Capacity int // total slots
	Empty    int // bases without objects
	ByColor  map[Color]int
}

// Colors returns the colors on the board in name order.
func (s Stats) Colors() []Color {
	colors := make([]Color, 0, len(s.ByColor))
	for c := range s.ByColor {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	return colors
}

// ComputeStats gathers summary counts for a board.
func ComputeStats(b *Board) Stats {
	st := Stats{
		Bases:   b.Len(),
		Objects: b.TotalObjects(),
		ByColor: b.CountByColor(),
	}
	for i := range b.bases {
		st.Capacity += b.bases[i].Capacity()
		if b.bases[i].IsEmpty() {
			st.Empty++
		}
	}
	return st
}
