package core

// IsComplete reports whether every base is either empty or full of a single
// color. A board without bases is complete.
func IsComplete(b *Board) bool {
	for i := range b.bases {
		if !b.bases[i].IsSorted() {
			return false
		}
	}
	return true
}
