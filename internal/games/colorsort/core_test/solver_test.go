package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
)

// twoColorLevel needs exactly three moves.
func twoColorLevel() core.Definition {
	return core.Definition{Rows: [][]core.Cell{{
		cell(5, core.Red, core.Red, core.Red, core.Red, core.Blue),
		cell(5, core.Blue, core.Blue, core.Blue, core.Blue, core.Red),
		cell(5),
	}}}
}

func TestSolveFindsShortestSolution(t *testing.T) {
	board, err := core.NewBoard(twoColorLevel())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	sol, err := core.Solve(board, core.DefaultSolveLimit)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(sol.Steps) != 3 {
		t.Errorf("solution has %d steps, expected 3: %v", len(sol.Steps), sol.Steps)
	}
	if sol.Explored < 2 {
		t.Errorf("Explored = %d, expected a search", sol.Explored)
	}
	if core.IsComplete(board) {
		t.Error("Solve must not modify its input")
	}
}

func TestSolutionIsPlayable(t *testing.T) {
	levels := []core.Definition{
		twoColorLevel(),
		{Rows: [][]core.Cell{
			{
				cell(5, core.Green, core.Red, core.Red, core.Blue, core.Green),
				cell(5, core.Blue, core.Green, core.Green, core.Red, core.Blue),
				cell(5, core.Red, core.Blue, core.Blue, core.Green, core.Red),
			},
			{cell(5)},
		}},
		{Rows: [][]core.Cell{{
			cell(3, core.Blue, core.Red, core.Red),
			cell(2, core.Red, core.Blue),
			cell(3),
		}}},
	}

	for i, def := range levels {
		board, err := core.NewBoard(def)
		if err != nil {
			t.Fatalf("level %d: NewBoard failed: %v", i, err)
		}
		sol, err := core.Solve(board, core.DefaultSolveLimit)
		if err != nil {
			t.Fatalf("level %d: Solve failed: %v", i, err)
		}

		s := core.NewSession(board)
		for _, st := range sol.Steps {
			if got := s.SelectBase(st.From); got != core.OutcomeSelected {
				t.Fatalf("level %d: select %d = %v", i, st.From, got)
			}
			if got := s.SelectBase(st.To); got != core.OutcomeMoved {
				t.Fatalf("level %d: move %v = %v", i, st, got)
			}
			if rec, _ := s.LastMove(); rec.Count != st.Count {
				t.Fatalf("level %d: moved %d, solver expected %d", i, rec.Count, st.Count)
			}
		}
		if !s.IsComplete() {
			t.Errorf("level %d: board not complete after solution\n%s", i, core.RenderASCII(s))
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	board, err := core.NewBoard(core.Definition{Rows: [][]core.Cell{{
		cell(2, core.Red, core.Blue),
		cell(2, core.Blue, core.Red),
	}}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	if _, err := core.Solve(board, 0); !errors.Is(err, core.ErrUnsolvable) {
		t.Errorf("Solve() error = %v, expected ErrUnsolvable", err)
	}
}

func TestSolveRespectsLimit(t *testing.T) {
	board, err := core.NewBoard(twoColorLevel())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	sol, err := core.Solve(board, 1)
	if !errors.Is(err, core.ErrSolveLimit) {
		t.Fatalf("Solve() error = %v, expected ErrSolveLimit", err)
	}
	if len(sol.Steps) != 0 {
		t.Error("no steps expected when the limit is hit")
	}
}

func TestSolveAlreadyComplete(t *testing.T) {
	board, err := core.NewBoard(core.Definition{Rows: [][]core.Cell{{cell(2, core.Red, core.Red), cell(2)}}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	sol, err := core.Solve(board, 10)
	if err != nil || len(sol.Steps) != 0 {
		t.Errorf("Solve() = %v, %v, expected empty solution", sol.Steps, err)
	}
}

func TestHint(t *testing.T) {
	s, err := core.LoadLevel(twoColorLevel())
	if err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}

	step, err := s.Hint(core.DefaultSolveLimit)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	s.SelectBase(step.From)
	if got := s.SelectBase(step.To); got != core.OutcomeMoved {
		t.Errorf("hinted step %v is not playable: %v", step, got)
	}

	done, _ := core.LoadLevel(core.Definition{Rows: [][]core.Cell{{cell(1, core.Red)}}})
	if _, err := done.Hint(10); !errors.Is(err, core.ErrSolved) {
		t.Errorf("Hint() on solved board = %v, expected ErrSolved", err)
	}
}

func TestValidateLevel(t *testing.T) {
	tests := []struct {
		name string
		def  core.Definition
		code string
	}{
		{
			name: "valid",
			def:  twoColorLevel(),
		},
		{
			name: "malformed",
			def:  core.Definition{Rows: [][]core.Cell{{cell(1, core.Red, core.Red)}}},
			code: core.CodeInvalidDefinition,
		},
		{
			name: "no bases",
			def:  core.Definition{},
			code: core.CodeNoBases,
		},
		{
			name: "already solved",
			def:  core.Definition{Rows: [][]core.Cell{{cell(2, core.Red, core.Red), cell(2)}}},
			code: core.CodeAlreadySolved,
		},
		{
			name: "deadlocked",
			def:  core.Definition{Rows: [][]core.Cell{{cell(2, core.Red, core.Blue), cell(2, core.Blue, core.Red)}}},
			code: core.CodeNotSolvable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := core.ValidateLevel(tc.def, core.DefaultSolveLimit)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("ValidateLevel() error = %v", err)
				}
				if len(sol.Steps) == 0 {
					t.Error("expected solution steps")
				}
				return
			}

			var vErr core.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Code != tc.code {
				t.Errorf("Code = %s, expected %s", vErr.Code, tc.code)
			}
		})
	}
}

func TestValidateLevelWrapsConfigurationError(t *testing.T) {
	_, err := core.ValidateLevel(core.Definition{Rows: [][]core.Cell{{cell(0)}}}, 10)

	var cfgErr *core.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected wrapped *ConfigurationError, got %v", err)
	}
}

func TestComputeStats(t *testing.T) {
	board, err := core.NewBoard(twoColorLevel())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	st := core.ComputeStats(board)
	if st.Bases != 3 || st.Objects != 10 || st.Capacity != 15 || st.Empty != 1 {
		t.Errorf("ComputeStats() = %+v", st)
	}
	if st.ByColor[core.Red] != 5 || st.ByColor[core.Blue] != 5 {
		t.Errorf("ByColor = %v", st.ByColor)
	}
	if got := st.Colors(); len(got) != 2 || got[0] != core.Blue || got[1] != core.Red {
		t.Errorf("Colors() = %v, expected [blue red]", got)
	}
}
