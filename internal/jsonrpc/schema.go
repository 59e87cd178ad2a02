// ABOUTME: Protocol grammar constants for JSON-RPC 2.0
// ABOUTME: Version literal and per-message field-name tables used by every validator

package jsonrpc

// Version is the only protocol revision this codec speaks. Every decoded
// object carrying a `jsonrpc` field must match it exactly.
const Version = "2.0"

const (
	fieldJSONRPC = "jsonrpc"
	fieldID      = "id"
	fieldMethod  = "method"
	fieldParams  = "params"
	fieldResult  = "result"
	fieldError   = "error"
	fieldCode    = "code"
	fieldMessage = "message"
	fieldData    = "data"
)

// Authoritative field sets per object shape. Any field outside the table is
// rejected as unknown during decode.
var (
	notificationFields = []string{fieldJSONRPC, fieldMethod, fieldParams}
	requestFields      = []string{fieldJSONRPC, fieldID, fieldMethod, fieldParams}
	responseFields     = []string{fieldJSONRPC, fieldID, fieldResult, fieldError}
	errorFields        = []string{fieldCode, fieldMessage, fieldData}
)
