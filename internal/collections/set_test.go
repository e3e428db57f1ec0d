package collections_test

import (
	"testing"

	"github.com/WeGentic/weg-translator-engine/internal/collections"
	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Equal(t, 0, len(s))
	})

	t.Run("set with initial values", func(t *testing.T) {
		s := collections.NewSet("a", "b", "c")
		assert.Equal(t, 3, len(s))
		assert.True(t, s.Has("a"))
		assert.True(t, s.Has("b"))
		assert.True(t, s.Has("c"))
	})

	t.Run("set with duplicate initial values", func(t *testing.T) {
		s := collections.NewSet("a", "b", "a", "c", "b")
		assert.Equal(t, 3, len(s), "duplicates should be deduplicated")
	})
}

func TestSetAddHasDelete(t *testing.T) {
	s := collections.NewSet[string]()
	s.Add("a", "b")
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))

	s.Delete("a")
	assert.False(t, s.Has("a"))
	assert.True(t, s.Has("b"))

	// Deleting a missing value is a no-op
	assert.NotPanics(t, func() { s.Delete("missing") })
}

func TestSetMembers(t *testing.T) {
	s := collections.NewSet(1, 2, 3)
	members := s.Members()
	assert.Len(t, members, 3)
	assert.ElementsMatch(t, []int{1, 2, 3}, members)
}
