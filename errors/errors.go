package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad      Phase = "load"      // declaration loading
	PhaseGenerate  Phase = "generate"  // table building and record binding
	PhaseParse     Phase = "parse"     // wire command to record
	PhaseSerialize Phase = "serialize" // record to wire command
	PhaseDispatch  Phase = "dispatch"  // notification routing
)

// Kind categorizes the error
type Kind string

const (
	// Runtime kinds: one per handled command, terminal for that command.
	KindParameterNotFound Kind = "parameter_not_found"
	KindParameterConvert  Kind = "parameter_convert"
	KindCommandNotFound   Kind = "command_not_found"

	// Generation-time kinds: fatal while building the codec tables,
	// never produced while handling a command.
	KindUnknownType     Kind = "unknown_type"
	KindUnresolvedField Kind = "unresolved_field"
	KindMissingUnit     Kind = "missing_unit"
	KindDuplicateNotify Kind = "duplicate_notify"
	KindTypeMismatch    Kind = "type_mismatch"
	KindInvalidData     Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Message string // record name of the message definition involved
	Field   string // wire name of the field involved
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Message != "" || e.Field != "" {
		b.WriteString(" at ")
		if e.Message != "" {
			b.WriteString(e.Message)
			if e.Field != "" {
				b.WriteByte('.')
			}
		}
		b.WriteString(e.Field)
	}

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

// Message sets the record name of the message definition
func (b *Builder) Message(name string) *Builder {
	b.err.Message = name
	return b
}

// Field sets the wire name of the field
func (b *Builder) Field(wire string) *Builder {
	b.err.Field = wire
	return b
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

// ParameterNotFound reports a declared wire name absent from a command's args
func ParameterNotFound(message, field string) *Error {
	return &Error{
		Phase:   PhaseParse,
		Kind:    KindParameterNotFound,
		Message: message,
		Field:   field,
		Detail:  fmt.Sprintf("parameter %q not found in command", field),
	}
}

// ParameterConvert reports a present value failing its type's parse rule
func ParameterConvert(message, field string, value any, cause error) *Error {
	return &Error{
		Phase:   PhaseParse,
		Kind:    KindParameterConvert,
		Message: message,
		Field:   field,
		Value:   value,
		Detail:  fmt.Sprintf("cannot convert %v", value),
		Cause:   cause,
	}
}

// CommandNotFound reports a command name with no registered notification
func CommandNotFound(name string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindCommandNotFound,
		Detail: fmt.Sprintf("no notification registered for command %q", name),
	}
}

// UnknownType reports a field whose declared type has no codec entry
func UnknownType(message, field, typeName string) *Error {
	return &Error{
		Phase:   PhaseGenerate,
		Kind:    KindUnknownType,
		Message: message,
		Field:   field,
		Detail:  fmt.Sprintf("no codec for type %q", typeName),
	}
}

// UnresolvedField reports a message param with no entry in the field table
func UnresolvedField(message, wire string) *Error {
	return &Error{
		Phase:   PhaseGenerate,
		Kind:    KindUnresolvedField,
		Message: message,
		Field:   wire,
		Detail:  fmt.Sprintf("param %q not declared in field table", wire),
	}
}

// MissingUnit reports a duration field carrying no recognized unit annotation
func MissingUnit(message, field string) *Error {
	return &Error{
		Phase:   PhaseGenerate,
		Kind:    KindMissingUnit,
		Message: message,
		Field:   field,
		Detail:  "duration field declares neither seconds nor milliseconds",
	}
}

// DuplicateNotify reports two notifications registered under one name
func DuplicateNotify(name string) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindDuplicateNotify,
		Detail: fmt.Sprintf("notification name %q registered twice", name),
	}
}

// TypeMismatch reports a record field whose Go type cannot hold its codec's value
func TypeMismatch(message, field, goType, want string) *Error {
	return &Error{
		Phase:   PhaseGenerate,
		Kind:    KindTypeMismatch,
		Message: message,
		Field:   field,
		Detail:  fmt.Sprintf("Go type %s, want %s", goType, want),
	}
}

// InvalidData reports a structural defect in loaded declarations
func InvalidData(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Load wraps a declaration loading failure
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
