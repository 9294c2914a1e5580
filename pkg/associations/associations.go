// Package associations maps file-name patterns to external helper programs.
// A table is an ordered sequence of associations; resolution walks the table
// in order and the first pattern match wins, so more specific patterns must
// be placed earlier by the operator.
package associations

import (
	"regexp"
)

// ArgKind discriminates the two template element variants
type ArgKind int

const (
	// ArgLiteral is a fixed string passed through unchanged
	ArgLiteral ArgKind = iota
	// ArgFile is a placeholder replaced with the file path at dispatch time
	ArgFile
)

// Arg is one element of an association's argument template
type Arg struct {
	Kind  ArgKind
	Value string // literal text; empty for ArgFile
}

// Literal returns a literal template element
func Literal(s string) Arg {
	return Arg{Kind: ArgLiteral, Value: s}
}

// FilePlaceholder returns the file placeholder template element
func FilePlaceholder() Arg {
	return Arg{Kind: ArgFile}
}

// Association binds a file-name pattern to a program and argument template
type Association struct {
	// Pattern matches anywhere in the path unless it anchors itself
	Pattern *regexp.Regexp

	// Program is the external helper to launch
	Program string

	// Args is the ordered argument template
	Args []Arg
}

// Invocation is a fully substituted launch request, built fresh per event
// and discarded once the launch call returns
type Invocation struct {
	Program string
	Args    []string

	// Path is the file that produced this invocation. The native launcher
	// hands it to the OS open primitive and ignores Program and Args.
	Path string
}

// New compiles a pattern into an association
func New(pattern, program string, args ...Arg) (Association, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Association{}, err
	}
	return Association{Pattern: re, Program: program, Args: args}, nil
}

// Resolve returns the first association in table order whose pattern matches
// path, or false when the table is exhausted. Pure: no side effects, no
// dependence on mutable state.
func Resolve(path string, table []Association) (*Association, bool) {
	for i := range table {
		if table[i].Pattern.MatchString(path) {
			return &table[i], true
		}
	}
	return nil, false
}

// Substitute maps a template onto a concrete argument list: every file
// placeholder becomes path, literals pass through untouched, order is
// preserved. Total and pure.
func Substitute(args []Arg, path string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		switch a.Kind {
		case ArgFile:
			out = append(out, path)
		default:
			out = append(out, a.Value)
		}
	}
	return out
}

// Invoke builds the resolved invocation for path
func (a *Association) Invoke(path string) Invocation {
	return Invocation{
		Program: a.Program,
		Args:    Substitute(a.Args, path),
		Path:    path,
	}
}
