// ABOUTME: Structured decode failure type with a fixed taxonomy of kinds
// ABOUTME: One error type serves wire decoding and programmatic construction

package jsonrpc

import (
	"fmt"
	"strings"
)

// FailureKind classifies a DecodeError. Every grammar violation the codec can
// detect maps to exactly one kind.
type FailureKind int

const (
	KindMissingField FailureKind = iota
	KindUnknownField
	KindDuplicateField
	KindTypeMismatch
	KindVersionMismatch
	KindInvalidErrorCode
	KindIDOverflow
	KindAmbiguousPayload
	KindMissingPayload
	KindUnclassifiableMessage
	KindEmptyBatch
)

// DecodeError is the single error type surfaced by the validating decoder and
// by construction-time validation. A malformed message yields no object, only
// one of these.
type DecodeError struct {
	Kind  FailureKind
	Field string // empty when the failure is not tied to one field
	msg   string
}

func (e *DecodeError) Error() string {
	return e.msg
}

func errMissingField(field string) *DecodeError {
	return &DecodeError{
		Kind:  KindMissingField,
		Field: field,
		msg:   fmt.Sprintf("missing field `%s`", field),
	}
}

func errUnknownField(field string, known []string) *DecodeError {
	quoted := make([]string, len(known))
	for i, name := range known {
		quoted[i] = "`" + name + "`"
	}

	return &DecodeError{
		Kind:  KindUnknownField,
		Field: field,
		msg:   fmt.Sprintf("unknown field `%s`, expected one of %s", field, strings.Join(quoted, ", ")),
	}
}

func errDuplicateField(field string) *DecodeError {
	return &DecodeError{
		Kind:  KindDuplicateField,
		Field: field,
		msg:   fmt.Sprintf("duplicate field `%s`", field),
	}
}

// errInvalidType reports a wrong JSON shape. With a field name the rendering
// matches the historical wire diagnostics, e.g.
// "field `code` contains an invalid type: boolean, expected a 64-bit signed integer".
func errInvalidType(field, got, expected string) *DecodeError {
	reason := fmt.Sprintf("invalid type: %s, expected %s", got, expected)
	if field != "" {
		reason = fmt.Sprintf("field `%s` contains an %s", field, reason)
	}

	return &DecodeError{Kind: KindTypeMismatch, Field: field, msg: reason}
}

func errVersionMismatch(got string) *DecodeError {
	return &DecodeError{
		Kind:  KindVersionMismatch,
		Field: fieldJSONRPC,
		msg:   fmt.Sprintf("invalid value for field `%s`: expected version %q, got %q", fieldJSONRPC, Version, got),
	}
}

func errInvalidErrorCode(field string) *DecodeError {
	reason := "invalid error code: must be predefined or in range -32099 to -32000"
	if field != "" {
		reason = fmt.Sprintf("field `%s` contains an %s", field, reason)
	}

	return &DecodeError{Kind: KindInvalidErrorCode, Field: field, msg: reason}
}

func errIDOverflow(field string) *DecodeError {
	reason := "number too large: expected a signed 64-bit integer"
	if field != "" {
		reason = fmt.Sprintf("field `%s` contains a %s", field, reason)
	}

	return &DecodeError{Kind: KindIDOverflow, Field: field, msg: reason}
}

func errAmbiguousPayload() *DecodeError {
	return &DecodeError{
		Kind: KindAmbiguousPayload,
		msg:  "`result` and `error` cannot both be present in the same response",
	}
}

func errMissingPayload() *DecodeError {
	return &DecodeError{
		Kind: KindMissingPayload,
		msg:  "response must contain either `result` or `error`",
	}
}

func errSuccessNeedsID() *DecodeError {
	return &DecodeError{
		Kind:  KindMissingField,
		Field: fieldID,
		msg:   "`id` is required in a successful response with `result`",
	}
}

// errUnclassifiable aggregates the reasons from every classification attempt
// instead of reporting only the first.
func errUnclassifiable(asRequest, asNotification, asResponse error) *DecodeError {
	return &DecodeError{
		Kind: KindUnclassifiableMessage,
		msg: fmt.Sprintf(
			"object matches none of the message shapes: as request: %v; as notification: %v; as response: %v",
			asRequest, asNotification, asResponse,
		),
	}
}

func errMixedBatch(index int) *DecodeError {
	return &DecodeError{
		Kind: KindTypeMismatch,
		msg:  fmt.Sprintf("batch element %d: batch must be homogeneous, calls and responses cannot mix", index),
	}
}

func errEmptyBatch() *DecodeError {
	return &DecodeError{
		Kind: KindEmptyBatch,
		msg:  "batch must contain at least one message",
	}
}
