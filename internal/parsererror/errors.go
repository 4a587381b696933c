package parsererror

import "fmt"

// RequiredFieldError reports a schema-mandatory element that is absent
// from the document. It aborts the whole parse; no partial result is
// produced for sibling messages.
type RequiredFieldError struct {
	Element string // element path relative to the context node, e.g. "GrpHdr/MsgId"
	Context string // description of the node being parsed
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("required element %s missing in %s", e.Element, e.Context)
}

// ParseError represents an error during parsing of a value
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
