// ABOUTME: Structured protocol failure payload: code, message, opaque data
// ABOUTME: Default messages are fixed per code class; data is carried verbatim

package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// ErrorData is an opaque auxiliary payload. The codec never interprets it;
// whatever JSON arrives is re-emitted byte for byte.
type ErrorData = RawValue

const (
	msgParseError     = "Parse error"
	msgInvalidRequest = "Invalid Request"
	msgMethodNotFound = "Method not found"
	msgInvalidParams  = "Invalid params"
	msgInternalError  = "Internal error"
	msgServerError    = "Server error"
)

// Error is the JSON-RPC error object carried on the failure branch of a
// response. It implements the Go error interface.
type Error struct {
	code    ErrorCode
	message string
	data    ErrorData
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{code: code, message: message}
}

// NewDefaultError fills the message with the fixed string for the code's
// class. Every code in the server-error range shares one generic message.
func NewDefaultError(code ErrorCode) *Error {
	var message string

	switch code.Int64() {
	case codeParseError:
		message = msgParseError
	case codeInvalidRequest:
		message = msgInvalidRequest
	case codeMethodNotFound:
		message = msgMethodNotFound
	case codeInvalidParams:
		message = msgInvalidParams
	case codeInternalError:
		message = msgInternalError
	default:
		message = msgServerError
	}

	return &Error{code: code, message: message}
}

// WithData returns a copy carrying data, replacing any previous data. The
// receiver is not modified.
func (e *Error) WithData(data ErrorData) *Error {
	clone := *e
	clone.data = data
	return &clone
}

// WithDataString attaches a plain string payload, JSON-encoded.
func (e *Error) WithDataString(data string) *Error {
	encoded, err := json.Marshal(data)
	if err != nil {
		// A Go string always marshals.
		panic(err)
	}

	return e.WithData(encoded)
}

func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Message() string {
	return e.message
}

// Data returns the opaque payload, nil when absent.
func (e *Error) Data() ErrorData {
	return e.data
}

func (e *Error) Error() string {
	if e.data != nil {
		return fmt.Sprintf("JSON-RPC Error (code %s): %s. Data: `%s`", e.code, e.message, e.data)
	}

	return fmt.Sprintf("JSON-RPC Error (code %s): %s", e.code, e.message)
}
