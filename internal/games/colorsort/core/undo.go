package core

// Undo reverts the most recent move and forgets it, so a second call does
// nothing. A pending selection is dropped along with it. Returns false when
// there was no move to revert.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return false
	}
	rec := *s.last
	s.last = nil
	s.selection = nil

	transfer(&s.board.bases[rec.Target], &s.board.bases[rec.Source], rec.Count)
	return true
}
