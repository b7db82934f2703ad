package config

import "fmt"

// SyntaxError reports a malformed top-level document: not an object,
// a missing required key, or a value of the wrong kind.
type SyntaxError struct {
	Path   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("config syntax error at %s: %s", e.Path, e.Reason)
}

// SemanticError reports a well-formed but semantically invalid document:
// an unknown modeling method, an unknown job type, a missing job field, a
// non-integer or sub-1 totalFrames.
type SemanticError struct {
	Path   string
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("config semantic error at %s: %s", e.Path, e.Reason)
}
