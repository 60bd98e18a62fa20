package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/craigmc08/tokenary/predicate"
	"github.com/craigmc08/tokenary/scan"
)

// compiler turns rules into reducers. Errors are raised with errorf and
// turned back into an error by recover.
type compiler struct {
	rule int // index of the rule being compiled
}

func (c *compiler) errorf(format string, args ...interface{}) {
	panic(&DefinitionError{Rule: c.rule, Msg: fmt.Sprintf(format, args...)})
}

func (c *compiler) recover(errk *error) {
	if e := recover(); e != nil {
		derr, ok := e.(*DefinitionError)
		if !ok {
			panic(e)
		}
		*errk = derr
	}
}

func (c *compiler) compile(r *Rule) scan.Reducer {
	if n := matcherCount(r); n != 1 {
		c.errorf("expected exactly one matcher, found %d", n)
	}
	if r.Keywords == nil && (r.Fallback != "" || r.Charset != "" || r.First != "") {
		c.errorf("fallback, charset and first only apply to keywords")
	}

	f := scan.Nothing
	if r.Kind != "" {
		f = scan.Make(scan.Kind(r.Kind))
	}

	var red scan.Reducer
	switch {
	case r.Char != "":
		ch := c.char("char", r.Char)
		red = scan.IfChar(map[rune]scan.Reducer{ch: scan.Single(f)})
	case r.Literal != "":
		red = literal(r.Literal, f)
	case r.Until != "":
		red = scan.Consume(scan.EverythingUntil([]rune(r.Until)...), f)
	case r.Pattern != "":
		red = scan.Consume(scan.UntilRegexFails(c.regexp("pattern", r.Pattern)), f)
	case r.Whitespace:
		red = scan.Consume(scan.Whitespace, f)
	case r.Everything:
		red = scan.Consume(scan.Everything, f)
	case r.Delimited != nil:
		red = c.delimited(r.Delimited, f)
	case r.Keywords != nil:
		red = c.keywords(r)
	}

	if r.When != "" {
		red = scan.IfThen(c.class("when", r.When), red)
	}
	return red
}

func matcherCount(r *Rule) int {
	n := 0
	for _, set := range []bool{
		r.Char != "", r.Literal != "", r.Until != "", r.Pattern != "",
		r.Whitespace, r.Everything, r.Delimited != nil, r.Keywords != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// char checks that s is exactly one character.
func (c *compiler) char(field, s string) rune {
	if utf8.RuneCountInString(s) != 1 {
		c.errorf("%s must be a single character, got %q", field, s)
	}
	ch, _ := utf8.DecodeRuneInString(s)
	return ch
}

// regexp compiles a pattern anchored at both ends.
func (c *compiler) regexp(field, pattern string) *regexp.Regexp {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		c.errorf("invalid %s %q: %v", field, pattern, err)
	}
	return re
}

var classes = map[string]predicate.Predicate{
	"letter": predicate.Letter,
	"digit":  predicate.Digit,
	"alnum":  predicate.Alnum,
	"space":  predicate.Space,
	"word":   predicate.Word,
	"any":    predicate.Any,
}

// class resolves a class name or a bracketed character class such as
// "[a-f]".
func (c *compiler) class(field, name string) predicate.Predicate {
	if p, ok := classes[name]; ok {
		return p
	}
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		return predicate.Matches(c.regexp(field, name))
	}
	c.errorf("unknown %s class %q", field, name)
	return nil
}

// literal matches lit exactly. Input that does not start with lit is not a
// match, so literals sharing a prefix can be listed longest first.
func literal(lit string, f scan.Factory) scan.Reducer {
	inner := scan.Consume(scan.Str(lit), f)
	return func(s scan.State) scan.Result {
		if !strings.HasPrefix(s.Remaining(), lit) {
			return scan.Miss()
		}
		return inner(s)
	}
}

func (c *compiler) delimited(d *Delimited, f scan.Factory) scan.Reducer {
	if d.Open == "" {
		c.errorf("delimited needs an open character")
	}
	open := c.char("open", d.Open)
	closing := open
	if d.Close != "" {
		closing = c.char("close", d.Close)
	}
	body := d.Body
	if body == "" {
		q := regexp.QuoteMeta(string(closing))
		body = `(\\` + q + `|[^\n` + q + `])*`
	}
	span := scan.Sequence(
		scan.Char(open),
		scan.UntilRegexFails(c.regexp("body", body)),
		scan.Char(closing),
	)
	return scan.IfChar(map[rune]scan.Reducer{open: scan.Consume(span, f)})
}

func (c *compiler) keywords(r *Rule) scan.Reducer {
	if r.Kind != "" {
		c.errorf("keywords take their kinds from the table; use fallback for other words")
	}
	table := make(map[string]scan.Factory, len(r.Keywords))
	for w, k := range r.Keywords {
		if w == "" || k == "" {
			c.errorf("keyword %q has an empty word or kind", w)
		}
		table[w] = scan.Make(scan.Kind(k))
	}
	var opts []scan.KeywordOption
	if r.Fallback != "" {
		opts = append(opts, scan.WithFallback(scan.Make(scan.Kind(r.Fallback))))
	}
	if r.Charset != "" {
		opts = append(opts, scan.WithCharset(c.class("charset", r.Charset)))
	}
	if r.First != "" {
		opts = append(opts, scan.WithFirstChar(c.class("first", r.First)))
	}
	return scan.Keywords(table, opts...)
}

func sortedWords(m map[string]string) []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
