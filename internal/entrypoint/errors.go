package entrypoint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClosed is returned when a document is used after Close or Discard.
var ErrClosed = errors.New("document is closed")

// ParseError indicates the file could not be parsed into a syntax tree.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing %s: source contains syntax errors", e.Path)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError indicates a structural invariant of the entrypoint file is
// violated. Reason names the specific missing or malformed element.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError indicates a requested method does not exist in the
// entrypoint class.
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no @%s method named %q", e.Kind, e.Name)
}

// DuplicateNameError indicates two methods of the same kind share a name, or
// that a creation attempt collides with an existing name. Lines holds the
// 1-based line numbers of every occurrence.
type DuplicateNameError struct {
	Kind  Kind
	Name  string
	Lines []int
}

func (e *DuplicateNameError) Error() string {
	if len(e.Lines) > 1 {
		locs := make([]string, len(e.Lines))
		for i, l := range e.Lines {
			locs[i] = fmt.Sprintf("line %d", l)
		}
		return fmt.Sprintf("duplicate @%s method %q (%s)", e.Kind, e.Name, strings.Join(locs, ", "))
	}
	return fmt.Sprintf("@%s method %q already exists", e.Kind, e.Name)
}

// UnsupportedExpressionError indicates an agent's tools argument is not a
// plain list literal, so it cannot be safely mutated.
type UnsupportedExpressionError struct {
	Agent string
	Found string // node type of the actual expression
}

func (e *UnsupportedExpressionError) Error() string {
	return fmt.Sprintf("tools argument of agent %q is a %s, not a list literal", e.Agent, e.Found)
}
