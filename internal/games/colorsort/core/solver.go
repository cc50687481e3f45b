package core

import (
	"errors"
	"fmt"
)

// DefaultSolveLimit bounds the number of distinct board states the solver
// visits before giving up.
const DefaultSolveLimit = 200000

var (
	// ErrUnsolvable means every reachable state was explored without finding
	// a solved board.
	ErrUnsolvable = errors.New("solver: level cannot be solved")
	// ErrSolveLimit means the exploration limit was hit first.
	ErrSolveLimit = errors.New("solver: exploration limit reached")
	// ErrSolved means there is nothing left to do.
	ErrSolved = errors.New("solver: board is already solved")
)

// Step is one move as the player would make it: select From, then To.
// Count is the number of objects that move.
type Step struct {
	From  int
	To    int
	Count int
}

func (s Step) String() string {
	return fmt.Sprintf("%d -> %d (%d)", s.From, s.To, s.Count)
}

// Solution is a shortest move sequence found by Solve.
type Solution struct {
	Steps    []Step
	Explored int // distinct states visited
}

// Solve runs a breadth-first search over the moves SelectBase allows and
// returns a shortest sequence that completes the board. A limit <= 0 means
// unbounded. The board is not modified.
func Solve(b *Board, limit int) (Solution, error) {
	start := b.Clone()
	if IsComplete(start) {
		return Solution{Explored: 1}, nil
	}

	type node struct {
		board  *Board
		parent int
		step   Step
	}

	nodes := []node{{board: start, parent: -1}}
	seen := map[string]struct{}{start.Key(): {}}

	for head := 0; head < len(nodes); head++ {
		cur := nodes[head].board
		nodes[head].board = nil

		for _, st := range legalSteps(cur) {
			next := cur.Clone()
			applyStep(next, st)

			key := next.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			nodes = append(nodes, node{board: next, parent: head, step: st})

			if IsComplete(next) {
				steps := make([]Step, 0)
				for i := len(nodes) - 1; nodes[i].parent >= 0; i = nodes[i].parent {
					steps = append(steps, nodes[i].step)
				}
				for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
					steps[l], steps[r] = steps[r], steps[l]
				}
				return Solution{Steps: steps, Explored: len(seen)}, nil
			}
			if limit > 0 && len(seen) >= limit {
				return Solution{Explored: len(seen)}, ErrSolveLimit
			}
		}
	}

	return Solution{Explored: len(seen)}, ErrUnsolvable
}

// legalSteps lists every transfer SelectBase would accept from this board.
func legalSteps(b *Board) []Step {
	var steps []Step
	for from := range b.bases {
		src := &b.bases[from]
		color, ok := src.Top()
		if !ok {
			continue
		}
		run := src.TopRun()
		for to := range b.bases {
			if to == from {
				continue
			}
			dst := &b.bases[to]
			if !dst.accepts(color) {
				continue
			}
			steps = append(steps, Step{From: from, To: to, Count: min(dst.FreeSpace(), run)})
		}
	}
	return steps
}

func applyStep(b *Board, st Step) {
	transfer(&b.bases[st.From], &b.bases[st.To], st.Count)
}

// Hint returns the first step of a shortest solution from the current board.
// The search runs on a snapshot, outside the session lock.
func (s *Session) Hint(limit int) (Step, error) {
	board := s.Board()
	if IsComplete(board) {
		return Step{}, ErrSolved
	}
	sol, err := Solve(board, limit)
	if err != nil {
		return Step{}, err
	}
	return sol.Steps[0], nil
}
