// Package errors provides structured error types for the tscommands library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the message definition and
// wire field involved, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindParameterConvert).
//		Message("ClientPoke").
//		Field("invokerid").
//		Value("abc").
//		Detail("cannot convert string to client id").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ParameterNotFound("ClientPoke", "invokerid")
//	err := errors.CommandNotFound("notifybogus")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
