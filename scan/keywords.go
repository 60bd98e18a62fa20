package scan

import (
	"github.com/craigmc08/tokenary/predicate"
)

// keywordConfig holds the settings of a Keywords reducer.
type keywordConfig struct {
	charset   predicate.Predicate // characters allowed anywhere in a word
	firstChar predicate.Predicate // characters allowed to start a word
	fallback  Factory             // used for words not in the table; nil rolls back
}

// A KeywordOption changes a setting of Keywords.
type KeywordOption func(*keywordConfig)

// WithCharset sets the characters a word may contain. The default is ASCII
// letters, digits and the underscore.
func WithCharset(p predicate.Predicate) KeywordOption {
	return func(c *keywordConfig) { c.charset = p }
}

// WithFirstChar sets the characters a word may start with. The default is
// ASCII letters.
func WithFirstChar(p predicate.Predicate) KeywordOption {
	return func(c *keywordConfig) { c.firstChar = p }
}

// WithFallback sets the Factory used for words that are not keywords.
// Without a fallback such words are not matched at all.
func WithFallback(f Factory) KeywordOption {
	return func(c *keywordConfig) { c.fallback = f }
}

// Keywords reads a word and looks it up in table.
//
// The word starts at the cursor with a character accepted by the first
// character class and extends over the longest run accepted by the charset.
// Lookup is exact and case sensitive. A keyword produces its own token; any
// other word produces a fallback token, or no match at all (with nothing
// consumed) when there is no fallback. A keyword that is only a prefix of the
// word never matches on its own.
func Keywords(table map[string]Factory, opts ...KeywordOption) Reducer {
	cfg := keywordConfig{
		charset:   predicate.Word,
		firstChar: predicate.ASCIILetter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	words := make(map[string]Factory, len(table))
	for w, f := range table {
		words[w] = f
	}

	return func(s State) Result {
		if s.AtEnd() || !cfg.firstChar(s.Peek()) {
			return Miss()
		}
		start := s.cursor
		cur := s
		for !cur.AtEnd() && cfg.charset(cur.Peek()) {
			cur = cur.step()
		}
		if cur.cursor == start {
			return Miss()
		}
		word := cur.SegmentFrom(start)

		f, ok := words[word]
		if !ok {
			if cfg.fallback == nil {
				return Miss()
			}
			f = cfg.fallback
		}
		if tok, ok := f(word, start); ok {
			cur = cur.AddToken(tok)
		}
		return Hit(cur)
	}
}
