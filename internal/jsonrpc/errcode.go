// ABOUTME: Closed-plus-open enumeration of JSON-RPC error codes
// ABOUTME: Five protocol-reserved codes plus the server-error range -32099..-32000

package jsonrpc

import "strconv"

const (
	codeParseError     int64 = -32700
	codeInvalidRequest int64 = -32600
	codeMethodNotFound int64 = -32601
	codeInvalidParams  int64 = -32602
	codeInternalError  int64 = -32603
	codeServerErrorMin int64 = -32099
	codeServerErrorMax int64 = -32000
)

// ErrorCode is a validated protocol error code. Values are constructable only
// through the named codes below or NewErrorCode, so an ErrorCode in hand is
// always one of the five reserved codes or inside the server-error range.
type ErrorCode struct {
	code int64
}

var (
	ParseError     = ErrorCode{codeParseError}
	InvalidRequest = ErrorCode{codeInvalidRequest}
	MethodNotFound = ErrorCode{codeMethodNotFound}
	InvalidParams  = ErrorCode{codeInvalidParams}
	InternalError  = ErrorCode{codeInternalError}
)

// NewErrorCode validates an arbitrary integer against the reserved sets. The
// rejection is itself a protocol Error of kind InvalidRequest carrying the
// diagnostic as data, so code validation and protocol-error construction
// share one path.
func NewErrorCode(code int64) (ErrorCode, *Error) {
	switch {
	case code == codeParseError,
		code == codeInvalidRequest,
		code == codeMethodNotFound,
		code == codeInvalidParams,
		code == codeInternalError:
		return ErrorCode{code}, nil
	case code >= codeServerErrorMin && code <= codeServerErrorMax:
		return ErrorCode{code}, nil
	default:
		err := NewDefaultError(InvalidRequest).
			WithDataString("invalid error code: must be predefined or in range -32099 to -32000")
		return ErrorCode{}, err
	}
}

// Int64 is the total inverse of NewErrorCode.
func (c ErrorCode) Int64() int64 {
	return c.code
}

func (c ErrorCode) IsServerError() bool {
	return c.code >= codeServerErrorMin && c.code <= codeServerErrorMax
}

func (c ErrorCode) String() string {
	return strconv.FormatInt(c.code, 10)
}
