package core

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Board is the ordered collection of bases for one level, plus the row layout
// the bases were declared in.
type Board struct {
	bases []Base
	rows  [][]int
}

// NewBoard builds a board from a definition after validating it.
func NewBoard(def Definition) (*Board, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		bases: make([]Base, 0, def.BaseCount()),
		rows:  make([][]int, 0, len(def.Rows)),
	}
	for _, row := range def.Rows {
		indices := make([]int, 0, len(row))
		for _, cell := range row {
			indices = append(indices, len(b.bases))
			b.bases = append(b.bases, newBase(cell.BaseHeight, cell.Objects))
		}
		b.rows = append(b.rows, indices)
	}
	return b, nil
}

// Len returns the number of bases.
func (b *Board) Len() int {
	return len(b.bases)
}

// Base returns the base at index i, or nil when i is out of range.
func (b *Board) Base(i int) *Base {
	if i < 0 || i >= len(b.bases) {
		return nil
	}
	return &b.bases[i]
}

// Rows returns the base indices of each layout row.
func (b *Board) Rows() [][]int {
	out := make([][]int, len(b.rows))
	for r, row := range b.rows {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// TotalObjects returns the number of objects on all bases.
func (b *Board) TotalObjects() int {
	n := 0
	for i := range b.bases {
		n += b.bases[i].Len()
	}
	return n
}

// CountByColor returns the number of objects of each color.
func (b *Board) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for i := range b.bases {
		for _, c := range b.bases[i].stack {
			counts[c]++
		}
	}
	return counts
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		bases: make([]Base, len(b.bases)),
		rows:  b.Rows(),
	}
	for i := range b.bases {
		clone.bases[i] = b.bases[i].clone()
	}
	return clone
}

// Key returns a canonical string encoding of the stacks. Two boards with the
// same key hold identical stacks on every base.
func (b *Board) Key() string {
	var sb strings.Builder
	for i := range b.bases {
		if i > 0 {
			sb.WriteByte('|')
		}
		for j, c := range b.bases[i].stack {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(string(c))
		}
	}
	return sb.String()
}

// Hash returns a 64-bit FNV-1a hash of the capacities and stacks.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	for i := range b.bases {
		h.Write([]byte(strconv.Itoa(b.bases[i].capacity)))
		h.Write([]byte{':'})
		for _, c := range b.bases[i].stack {
			h.Write([]byte(c))
			h.Write([]byte{','})
		}
		h.Write([]byte{'|'})
	}
	return h.Sum64()
}

// transfer pops up to n objects from src and pushes them onto dst, stopping
// early when dst fills up. Returns the number moved.
func transfer(src, dst *Base, n int) int {
	moved := 0
	for moved < n && !src.IsEmpty() && !dst.IsFull() {
		dst.push(src.pop())
		moved++
	}
	return moved
}
