// ABOUTME: JSON-RPC correlation identifier: null, string, or signed 64-bit integer
// ABOUTME: Integers above 2^63-1 are rejected at decode time, never truncated

package jsonrpc

import (
	"strconv"

	"github.com/google/uuid"
)

// IDKind discriminates the three identifier shapes.
type IDKind int

const (
	IDNull IDKind = iota
	IDInt64
	IDString
)

// ID is the request/response correlation identifier. The numeric branch is
// signed 64-bit: negative identifiers are accepted, values above 2^63-1 fail
// with an overflow error. This is a compatibility-relevant choice; peers that
// mint identifiers in the upper half of the unsigned 64-bit range are not
// interoperable with this codec.
type ID struct {
	kind IDKind
	num  int64
	str  string
}

// NullID returns the null identifier. It is also the zero value.
func NullID() ID {
	return ID{kind: IDNull}
}

func Int64ID(v int64) ID {
	return ID{kind: IDInt64, num: v}
}

func StringID(s string) ID {
	return ID{kind: IDString, str: s}
}

// NewRequestID mints a fresh string identifier suitable for an outgoing
// request.
func NewRequestID() ID {
	return StringID(uuid.NewString())
}

func (id ID) Kind() IDKind {
	return id.kind
}

func (id ID) IsNull() bool {
	return id.kind == IDNull
}

func (id ID) IsInt64() bool {
	return id.kind == IDInt64
}

func (id ID) IsString() bool {
	return id.kind == IDString
}

func (id ID) AsInt64() (int64, bool) {
	return id.num, id.kind == IDInt64
}

func (id ID) AsString() (string, bool) {
	return id.str, id.kind == IDString
}

// String renders the natural value; the null identifier renders as the
// literal text "null".
func (id ID) String() string {
	switch id.kind {
	case IDInt64:
		return strconv.FormatInt(id.num, 10)
	case IDString:
		return id.str
	default:
		return "null"
	}
}
