package core

// Base is a bounded stack of colored objects. Index 0 is the bottom.
// Exported methods are read-only; the board mutates bases only through moves.
type Base struct {
	capacity int
	stack    []Color
}

// newBase sizes the stack to its objects only; capacity is a limit, not an
// allocation, and level files may declare very tall bases.
func newBase(capacity int, objects []Color) Base {
	stack := make([]Color, len(objects))
	copy(stack, objects)
	return Base{capacity: capacity, stack: stack}
}

// Capacity returns the maximum number of objects the base holds.
func (b *Base) Capacity() int {
	return b.capacity
}

// Len returns the number of objects currently on the base.
func (b *Base) Len() int {
	return len(b.stack)
}

// IsEmpty reports whether the base holds no objects.
func (b *Base) IsEmpty() bool {
	return len(b.stack) == 0
}

// IsFull reports whether the base is at capacity.
func (b *Base) IsFull() bool {
	return len(b.stack) >= b.capacity
}

// FreeSpace returns the number of objects that still fit.
func (b *Base) FreeSpace() int {
	return b.capacity - len(b.stack)
}

// At returns the color at stack position i (0 is the bottom).
func (b *Base) At(i int) Color {
	return b.stack[i]
}

// Colors returns a copy of the stack, bottom first.
func (b *Base) Colors() []Color {
	out := make([]Color, len(b.stack))
	copy(out, b.stack)
	return out
}

// Top returns the color of the topmost object.
func (b *Base) Top() (Color, bool) {
	if len(b.stack) == 0 {
		return "", false
	}
	return b.stack[len(b.stack)-1], true
}

// TopRun returns the length of the maximal run of same-colored objects at the
// top of the stack.
func (b *Base) TopRun() int {
	n := len(b.stack)
	if n == 0 {
		return 0
	}
	top := b.stack[n-1]
	run := 1
	for i := n - 2; i >= 0 && b.stack[i] == top; i-- {
		run++
	}
	return run
}

// IsSorted reports whether the base is either empty or completely filled
// with a single color.
func (b *Base) IsSorted() bool {
	if b.IsEmpty() {
		return true
	}
	return b.IsFull() && b.TopRun() == len(b.stack)
}

// accepts reports whether an object of color c may be placed on top.
func (b *Base) accepts(c Color) bool {
	if b.IsFull() {
		return false
	}
	top, ok := b.Top()
	return !ok || top == c
}

func (b *Base) push(c Color) {
	b.stack = append(b.stack, c)
}

func (b *Base) pop() Color {
	n := len(b.stack)
	c := b.stack[n-1]
	b.stack = b.stack[:n-1]
	return c
}

func (b *Base) clone() Base {
	return newBase(b.capacity, b.stack)
}
