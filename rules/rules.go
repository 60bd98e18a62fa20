// Package rules builds tokenizers from YAML definitions.
//
// A definition names the tokenizer and lists its rules in priority order:
//
//	name: csv
//	catch: ERROR
//	rules:
//	  - char: ","
//	    kind: COMMA
//	  - char: "\n"
//	    kind: NEWLINE
//	  - until: ",\n"
//	    kind: VALUE
//
// Every rule has exactly one matcher. A rule without a kind consumes its
// match without producing a token.
package rules

import (
	"fmt"
	"os"

	"github.com/craigmc08/tokenary/scan"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v2"
)

func tracer() tracing.Trace {
	return tracing.Select("tokenary.rules")
}

// Definition is a tokenizer described in YAML.
type Definition struct {
	Name  string `yaml:"name"`            // Used in traces and by the CLI.
	Catch string `yaml:"catch,omitempty"` // Token kind for recovered failures; empty aborts instead.
	Rules []Rule `yaml:"rules"`
}

// Rule is one reducer of a Definition. Exactly one of the matcher fields
// (Char, Literal, Until, Pattern, Whitespace, Everything, Delimited,
// Keywords) must be set.
type Rule struct {
	Kind string `yaml:"kind,omitempty"`
	When string `yaml:"when,omitempty"` // class gating the rule on the character under the cursor

	Char       string            `yaml:"char,omitempty"`       // a single character
	Literal    string            `yaml:"literal,omitempty"`    // an exact string
	Until      string            `yaml:"until,omitempty"`      // everything up to one of these characters
	Pattern    string            `yaml:"pattern,omitempty"`    // longest run whose prefixes all match
	Whitespace bool              `yaml:"whitespace,omitempty"` // a run of white space
	Everything bool              `yaml:"everything,omitempty"` // the rest of the input
	Delimited  *Delimited        `yaml:"delimited,omitempty"`  // open, body, close
	Keywords   map[string]string `yaml:"keywords,omitempty"`   // word -> kind

	Fallback string `yaml:"fallback,omitempty"` // kind of non-keyword words
	Charset  string `yaml:"charset,omitempty"`  // class of word characters
	First    string `yaml:"first,omitempty"`    // class of first word characters
}

// Delimited describes a span between an opening and a closing character,
// such as a quoted string. A missing closing character is a fatal failure.
type Delimited struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close,omitempty"` // defaults to Open
	Body  string `yaml:"body,omitempty"`  // pattern for the content; defaults to anything but an unescaped Close or a line break
}

// DefinitionError reports an invalid definition. Rule is the index of the
// offending rule, or -1 when the problem is not tied to a single rule.
type DefinitionError struct {
	Rule int
	Msg  string
}

func (e *DefinitionError) Error() string {
	if e.Rule < 0 {
		return "rules: " + e.Msg
	}
	return fmt.Sprintf("rules: rule %d: %s", e.Rule, e.Msg)
}

// Load reads a definition from a YAML file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads a definition from YAML. Unknown fields are an error.
func Parse(data []byte) (*Definition, error) {
	def := &Definition{}
	if err := yaml.UnmarshalStrict(data, def); err != nil {
		return nil, &DefinitionError{Rule: -1, Msg: err.Error()}
	}
	if def.Name == "" {
		def.Name = "rules"
	}
	tracer().P("rules", def.Name).Debugf("parsed %d rules", len(def.Rules))
	return def, nil
}

// Compile turns the definition into a Tokenizer.
func (def *Definition) Compile() (t *scan.Tokenizer, err error) {
	c := &compiler{}
	defer c.recover(&err)

	if len(def.Rules) == 0 {
		c.rule = -1
		c.errorf("definition %q has no rules", def.Name)
	}
	reducers := make([]scan.Reducer, 0, len(def.Rules))
	for i := range def.Rules {
		c.rule = i
		reducers = append(reducers, c.compile(&def.Rules[i]))
	}
	opts := []scan.Option{scan.WithName(def.Name)}
	if def.Catch != "" {
		opts = append(opts, scan.WithCatcher(scan.Catch(scan.Kind(def.Catch))))
	}
	tracer().P("rules", def.Name).Debugf("compiled %d reducers", len(reducers))
	return scan.New(reducers, opts...)
}

// Kinds lists every token kind the definition can produce, in rule order.
func (def *Definition) Kinds() []scan.Kind {
	var kinds []scan.Kind
	seen := map[string]bool{}
	add := func(k string) {
		if k != "" && !seen[k] {
			seen[k] = true
			kinds = append(kinds, scan.Kind(k))
		}
	}
	for _, r := range def.Rules {
		add(r.Kind)
		for _, w := range sortedWords(r.Keywords) {
			add(r.Keywords[w])
		}
		add(r.Fallback)
	}
	add(def.Catch)
	return kinds
}
