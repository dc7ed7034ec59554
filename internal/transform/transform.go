// Package transform parses CSS and SVG transform attribute strings into an
// ordered mapping from a known function name to its arguments.
package transform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrUnknownFunction = errors.New("unknown transform function")
	ErrInvalidArgument = errors.New("invalid transform argument")
)

// callPattern matches one name(args) segment.
var callPattern = regexp.MustCompile(`([A-Za-z][A-Za-z0-9]*)\s*\(([^)]*)\)`)

type call struct {
	name string
	args string
}

func tokenize(text string) []call {
	matches := callPattern.FindAllStringSubmatch(text, -1)
	out := make([]call, 0, len(matches))
	for _, m := range matches {
		out = append(out, call{name: m[1], args: m[2]})
	}
	return out
}

// ordered keeps function arguments by name along with first-seen order. A
// repeated name replaces its arguments in place.
type ordered[K ~string, A any] struct {
	order []K
	args  map[K][]A
}

func (o *ordered[K, A]) set(name K, args []A) {
	if o.args == nil {
		o.args = map[K][]A{}
	}
	if _, ok := o.args[name]; !ok {
		o.order = append(o.order, name)
	}
	o.args[name] = args
}

func (o ordered[K, A]) get(name K) ([]A, bool) {
	a, ok := o.args[name]
	return append([]A(nil), a...), ok
}

func (o ordered[K, A]) names() []K { return append([]K(nil), o.order...) }

func (o ordered[K, A]) render(sep string, format func(A) string) string {
	parts := make([]string, 0, len(o.order))
	for _, name := range o.order {
		args := o.args[name]
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = format(a)
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", name, strings.Join(rendered, sep)))
	}
	return strings.Join(parts, " ")
}
