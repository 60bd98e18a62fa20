package scan

import (
	"github.com/craigmc08/tokenary/predicate"
)

// Builder collects reducers in the order they are added and freezes them
// into a Tokenizer with Build. Each call returns the Builder so calls can be
// chained:
//
//	csv, err := scan.NewBuilder().
//		OnChar(map[rune]scan.Reducer{
//			',':  scan.Single(scan.Make("COMMA")),
//			'\n': scan.Single(scan.Make("NEWLINE")),
//		}).
//		Default(scan.Consume(scan.EverythingUntil(',', '\n'), scan.Make("VALUE"))).
//		Build()
type Builder struct {
	reducers []Reducer
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Default adds r unconditionally.
func (b *Builder) Default(r Reducer) *Builder {
	b.reducers = append(b.reducers, r)
	return b
}

// OnChar adds a reducer dispatching on the character under the cursor.
func (b *Builder) OnChar(m map[rune]Reducer) *Builder {
	return b.Default(IfChar(m))
}

// If adds r, gated by p.
func (b *Builder) If(p predicate.Predicate, r Reducer) *Builder {
	return b.Default(IfThen(p, r))
}

// Keywords adds a keyword reducer.
func (b *Builder) Keywords(table map[string]Factory, opts ...KeywordOption) *Builder {
	return b.Default(Keywords(table, opts...))
}

// Build returns a Tokenizer for the reducers added so far. Adding more
// reducers later does not change Tokenizers already built.
func (b *Builder) Build(opts ...Option) (*Tokenizer, error) {
	return New(b.reducers, opts...)
}
