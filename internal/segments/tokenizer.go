package segments

// Tokenizer splits segment text into an ordered token sequence, consulting
// and populating a Cache. Construct one per editing session for isolated
// cache lifetimes, or use the package-level functions which share a default
// process-wide instance.
type Tokenizer struct {
	cache *Cache
}

// NewTokenizer creates a Tokenizer backed by the given cache. A nil cache
// gets a fresh private one.
func NewTokenizer(cache *Cache) *Tokenizer {
	if cache == nil {
		cache = NewCache()
	}
	return &Tokenizer{cache: cache}
}

// Cache exposes the tokenizer's backing cache.
func (t *Tokenizer) Cache() *Cache {
	return t.cache
}

// Tokenize splits text into tokens using the text itself as the cache key.
// Unrelated segments sharing literal text collide under this fallback, which
// is harmless (tokenization is a pure function of text) but forfeits
// addressing precision; callers holding addressing metadata should prefer
// TokenizeWithKey with a ComposeCacheKey key.
func (t *Tokenizer) Tokenize(text string) []Token {
	return t.TokenizeWithKey(text, text)
}

// TokenizeWithKey splits text into tokens memoized under the supplied cache
// key. A hit returns the stored sequence unchanged, with no re-validation
// against the current text: the caller must pass a key that changes whenever
// the text changes (ComposeCacheKey embeds the text, so its keys always do).
//
// Tokenization never fails: malformed or unterminated markers degrade to
// plain text. Empty text yields an empty sequence; text without markers
// yields exactly one text token.
func (t *Tokenizer) TokenizeWithKey(text, cacheKey string) []Token {
	if tokens, ok := t.cache.Get(cacheKey); ok {
		return tokens
	}

	tokens := scan(text)
	t.cache.Put(cacheKey, tokens)
	return tokens
}

// Reset drops every cached token sequence so subsequent calls recompute.
func (t *Tokenizer) Reset() {
	t.cache.Reset()
}

// scan walks text left to right applying the placeholder grammar, emitting
// text tokens for gaps between matches and placeholder tokens for matches.
// Adjacent markers produce no zero-length text token between them.
func scan(text string) []Token {
	if text == "" {
		return nil
	}

	matches := placeholderPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, 2*len(matches)+1)
	cursor := 0

	for _, m := range matches {
		if m[0] > cursor {
			tokens = append(tokens, Token{Kind: KindText, Value: text[cursor:m[0]]})
		}
		raw := text[m[0]:m[1]]
		tokens = append(tokens, Token{
			Kind:          KindPlaceholder,
			Value:         raw,
			PlaceholderID: DecomposePlaceholder(raw).ID,
		})
		cursor = m[1]
	}

	if cursor < len(text) {
		tokens = append(tokens, Token{Kind: KindText, Value: text[cursor:]})
	}
	return tokens
}

// defaultTokenizer backs the package-level convenience functions.
var defaultTokenizer = NewTokenizer(nil)

// Tokenize splits text into tokens via the shared default tokenizer, keyed
// by the text itself. See Tokenizer.Tokenize.
func Tokenize(text string) []Token {
	return defaultTokenizer.Tokenize(text)
}

// TokenizeWithKey splits text into tokens via the shared default tokenizer
// under an explicit cache key. See Tokenizer.TokenizeWithKey.
func TokenizeWithKey(text, cacheKey string) []Token {
	return defaultTokenizer.TokenizeWithKey(text, cacheKey)
}

// ResetTokenCache drops all entries from the shared default cache.
func ResetTokenCache() {
	defaultTokenizer.Reset()
}
