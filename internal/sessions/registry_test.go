package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAssignsUUID(t *testing.T) {
	r := NewRegistry(0)

	s, err := r.Open("alice", "10.0.0.1:5000")
	require.NoError(t, err)

	_, err = uuid.Parse(string(s.ID()))
	assert.NoError(t, err, "session IDs are UUIDs")

	got, ok := r.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, r.Count())
}

func TestRegistryLimit(t *testing.T) {
	r := NewRegistry(1)

	_, err := r.Open("a", "")
	require.NoError(t, err)

	_, err = r.Open("b", "")
	assert.ErrorIs(t, err, ErrFull)
}

func TestUnregisterClosesSession(t *testing.T) {
	r := NewRegistry(0)
	s, err := r.Open("a", "")
	require.NoError(t, err)

	r.Unregister(s.ID())
	r.Unregister(s.ID())

	assert.Equal(t, 0, r.Count())
	select {
	case <-s.Done():
	default:
		t.Fatal("session should be closed")
	}
}

func TestListIsOrderedByStart(t *testing.T) {
	r := NewRegistry(0)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(-tick) * time.Minute)
	}

	first, _ := r.Open("first", "")
	second, _ := r.Open("second", "")
	second.SetLevel("classic-03")

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].User, "second started earlier on the fake clock")
	assert.Equal(t, "classic-03", list[0].Level)
	assert.Equal(t, first.ID(), list[1].ID)
}

func TestCloseAll(t *testing.T) {
	r := NewRegistry(0)
	a, _ := r.Open("a", "")
	b, _ := r.Open("b", "")

	r.CloseAll()

	for _, s := range []*Session{a, b} {
		select {
		case <-s.Done():
		default:
			t.Errorf("session %s not closed", s.ID())
		}
	}
	assert.Equal(t, 2, r.Count(), "sessions unregister themselves")
}

func TestConcurrentOpen(t *testing.T) {
	r := NewRegistry(0)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := r.Open("p", "")
			if err == nil {
				s.SetLevel("x")
				_ = r.List()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, r.Count())
}
