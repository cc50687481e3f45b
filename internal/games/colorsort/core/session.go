// Package core implements the color sort puzzle engine: bases holding stacks
// of colored objects, the selection state machine, run transfers, single-step
// undo and the completion check. It has no rendering or I/O dependencies.
package core

import "sync"

// Selection names the source base and the size of its selected top run.
type Selection struct {
	Base  int
	Count int
}

// MoveRecord describes the most recent completed transfer.
type MoveRecord struct {
	Source int
	Target int
	Count  int
}

// Session holds all mutable state of one level in play: the board, the
// pending selection and the single undoable move. It is safe for concurrent
// use; every operation runs under the session lock.
type Session struct {
	mu        sync.Mutex
	board     *Board
	selection *Selection
	last      *MoveRecord
}

// NewSession wraps an existing board. The session takes ownership of b.
func NewSession(b *Board) *Session {
	return &Session{board: b}
}

// Board returns a snapshot of the current board.
func (s *Session) Board() *Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Selection returns the pending selection, if any.
func (s *Session) Selection() (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return Selection{}, false
	}
	return *s.selection, true
}

// IsRaised reports whether the object at stack position index of the given
// base belongs to the pending selection. Renderers use it to lift objects.
func (s *Session) IsRaised(base, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raised(base, index)
}

func (s *Session) raised(base, index int) bool {
	if s.selection == nil || s.selection.Base != base {
		return false
	}
	n := s.board.bases[base].Len()
	return index >= n-s.selection.Count && index < n
}

// LastMove returns the move that Undo would revert.
func (s *Session) LastMove() (MoveRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return MoveRecord{}, false
	}
	return *s.last, true
}

// CanUndo reports whether a move record exists.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last != nil
}

// IsComplete reports whether the board is solved.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IsComplete(s.board)
}
