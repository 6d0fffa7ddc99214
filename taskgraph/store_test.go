package taskgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krahos/planter-core/task"
)

func TestStore_AddAndGet(t *testing.T) {
	s := NewStore()

	h := s.Add(task.New("Become world leader"))

	got, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, "Become world leader", got.Title())
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(h))
}

func TestStore_GetReturnsLivePointer(t *testing.T) {
	s := NewStore()
	h := s.Add(task.New("Become world leader"))

	got, ok := s.Get(h)
	require.True(t, ok)
	got.EditTitle("Become world's biggest loser")

	again, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, "Become world's biggest loser", again.Title())
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	h := s.Add(task.New("Get rich"))

	require.NoError(t, s.Remove(h))

	_, ok := s.Get(h)
	assert.False(t, ok)
	assert.False(t, s.Contains(h))
	assert.Equal(t, 0, s.Len())

	require.ErrorIs(t, s.Remove(h), ErrHandleNotFound)
	require.ErrorIs(t, s.Remove(Handle(99)), ErrHandleNotFound)
}

func TestStore_HandlesAreNeverReused(t *testing.T) {
	s := NewStore()
	first := s.Add(task.New("Get rich"))
	require.NoError(t, s.Remove(first))

	second := s.Add(task.New("Be evil"))

	assert.NotEqual(t, first, second)
	_, ok := s.Get(first)
	assert.False(t, ok, "a removed handle must stay invalid")
}

func TestStore_IterationOrder(t *testing.T) {
	s := NewStore()
	a := s.Add(task.New("A"))
	b := s.Add(task.New("B"))
	c := s.Add(task.New("C"))

	require.NoError(t, s.Remove(b))
	d := s.Add(task.New("D"))

	assert.Equal(t, []Handle{a, c, d}, s.Handles())

	titles := make([]string, 0, 3)
	for _, tk := range s.Tasks() {
		titles = append(titles, tk.Title())
	}
	assert.Equal(t, []string{"A", "C", "D"}, titles)
}
