package core

// Cell describes one base of a level: its capacity and initial objects,
// bottom first.
type Cell struct {
	BaseHeight int
	Objects    []Color
}

// Definition is the static description of a level: an ordered list of rows,
// each an ordered list of cells. Row layout only matters for presentation.
type Definition struct {
	Rows [][]Cell
}

// BaseCount returns the number of bases the definition produces.
func (d Definition) BaseCount() int {
	n := 0
	for _, row := range d.Rows {
		n += len(row)
	}
	return n
}

// Validate checks the definition for malformed cells. It returns a
// *ConfigurationError describing the first problem found.
func (d Definition) Validate() error {
	for r, row := range d.Rows {
		for c, cell := range row {
			if cell.BaseHeight < 1 {
				return &ConfigurationError{Row: r, Col: c, Reason: "base height must be at least 1"}
			}
			if len(cell.Objects) > cell.BaseHeight {
				return &ConfigurationError{Row: r, Col: c, Reason: "more objects than base height"}
			}
			for _, obj := range cell.Objects {
				if obj == "" {
					return &ConfigurationError{Row: r, Col: c, Reason: "object without a color"}
				}
			}
		}
	}
	return nil
}

// LoadLevel builds a fresh session from a definition: one base per cell in
// row-major order, no selection and nothing to undo.
func LoadLevel(def Definition) (*Session, error) {
	board, err := NewBoard(def)
	if err != nil {
		return nil, err
	}
	return &Session{board: board}, nil
}
