package segments_test

import (
	"testing"

	"github.com/WeGentic/weg-translator-engine/internal/segments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetPut(t *testing.T) {
	cache := segments.NewCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	tokens := []segments.Token{{Kind: segments.KindText, Value: "abc"}}
	cache.Put("k", tokens)

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, tokens, got)
	assert.Equal(t, 1, cache.Len())
}

func TestCachePutCopiesSequence(t *testing.T) {
	cache := segments.NewCache()
	tokens := []segments.Token{{Kind: segments.KindText, Value: "original"}}
	cache.Put("k", tokens)

	// Mutating the caller's slice must not reach the stored entry.
	tokens[0].Value = "mutated"

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "original", got[0].Value)
}

func TestCachePutIsIdempotent(t *testing.T) {
	cache := segments.NewCache()
	tokens := []segments.Token{{Kind: segments.KindText, Value: "abc"}}

	cache.Put("k", tokens)
	cache.Put("k", tokens)

	assert.Equal(t, 1, cache.Len())
}

func TestCacheReset(t *testing.T) {
	cache := segments.NewCache()
	cache.Put("a", nil)
	cache.Put("b", []segments.Token{{Kind: segments.KindText, Value: "x"}})
	require.Equal(t, 2, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("b")
	assert.False(t, ok)
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := segments.NewCache()
	tk := segments.NewTokenizer(cache)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				tk.TokenizeWithKey("Hello {{ph:1}}", "shared-key")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	got, ok := cache.Get("shared-key")
	require.True(t, ok)
	assert.Len(t, got, 2, "concurrent writers must converge on one well-formed entry")
}
