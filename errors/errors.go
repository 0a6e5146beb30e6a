package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // writing entries into a record buffer
	PhaseParse  Phase = "parse"  // format template parsing
	PhaseDecode Phase = "decode" // reading entries from a record buffer
	PhaseRender Phase = "render" // turning a decoded record into text
	PhaseStream Phase = "stream" // framed record stream I/O
)

// Kind categorizes the error
type Kind string

const (
	KindCapacityExceeded  Kind = "capacity_exceeded"
	KindUnmatchedBrace    Kind = "unmatched_brace"
	KindMissingBrace      Kind = "missing_brace"
	KindEmptyHint         Kind = "empty_hint"
	KindUnknownHint       Kind = "unknown_hint"
	KindUnexpectedContent Kind = "unexpected_content"
	KindTruncated         Kind = "truncated"
	KindInvalidTag        Kind = "invalid_tag"
	KindInvalidInput      Kind = "invalid_input"
	KindInvalidData       Kind = "invalid_data"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// ErrCapacity is the shared capacity-exceeded error returned by the encoding
// engine. It is preallocated so that a failing write never allocates; a
// caller that needs sizing detail should compare required size against its
// buffer itself.
var ErrCapacity = &Error{
	Phase:  PhaseEncode,
	Kind:   KindCapacityExceeded,
	Detail: "destination buffer too small for entry",
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnmatchedBrace creates an error for a lone `{` or `}` in a template
func UnmatchedBrace(brace byte) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnmatchedBrace,
		Detail: fmt.Sprintf("unmatched `%c` in format string", brace),
		Value:  string(brace),
	}
}

// MissingBrace creates an error for a placeholder with no closing `}`
func MissingBrace() *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMissingBrace,
		Detail: "missing `}` in format string",
	}
}

// EmptyHint creates an error for a `:` with nothing after it
func EmptyHint() *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindEmptyHint,
		Detail: "missing display hint after `:`",
	}
}

// UnknownHint creates an error for an unrecognized hint keyword
func UnknownHint(hint string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnknownHint,
		Detail: fmt.Sprintf("unknown display hint: %q", hint),
		Value:  hint,
	}
}

// UnexpectedContent creates an error for trailing placeholder content
func UnexpectedContent(content string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedContent,
		Detail: fmt.Sprintf("unexpected content %q in format string", content),
		Value:  content,
	}
}

// Truncated creates an error for input that ends inside a field
func Truncated(phase Phase, what string, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Detail: fmt.Sprintf("truncated %s: need %d bytes, have %d", what, need, have),
	}
}

// InvalidTag creates an error for an out-of-contract tag value
func InvalidTag(phase Phase, what string, tag uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidTag,
		Detail: fmt.Sprintf("invalid %s tag %d", what, tag),
		Value:  tag,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
