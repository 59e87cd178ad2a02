// ABOUTME: Tests for the correlation identifier value type
// ABOUTME: Covers the three shapes, decode bounds, and encode symmetry

package jsonrpc

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestIDKinds(t *testing.T) {
	null := NullID()
	if !null.IsNull() || null.IsInt64() || null.IsString() {
		t.Error("NullID not recognized as null")
	}
	if null.String() != "null" {
		t.Errorf("expected null to render as 'null', got %q", null.String())
	}

	num := Int64ID(math.MaxInt64)
	if !num.IsInt64() || num.IsNull() || num.IsString() {
		t.Error("Int64ID not recognized as integer")
	}
	if v, ok := num.AsInt64(); !ok || v != math.MaxInt64 {
		t.Errorf("AsInt64 returned %d, %v", v, ok)
	}
	if num.String() != "9223372036854775807" {
		t.Errorf("unexpected rendering %q", num.String())
	}

	str := StringID("smth")
	if !str.IsString() || str.IsNull() || str.IsInt64() {
		t.Error("StringID not recognized as string")
	}
	if v, ok := str.AsString(); !ok || v != "smth" {
		t.Errorf("AsString returned %q, %v", v, ok)
	}
}

func TestIDZeroValueIsNull(t *testing.T) {
	var id ID
	if !id.IsNull() {
		t.Error("zero value ID should be null")
	}
}

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()

	if !a.IsString() {
		t.Fatal("expected a string identifier")
	}
	if a == b {
		t.Error("expected distinct identifiers")
	}
}

func TestDecodeID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ID
	}{
		{"null", `null`, NullID()},
		{"string", `"bc0caa41"`, StringID("bc0caa41")},
		{"integer", `1`, Int64ID(1)},
		{"negative", `-7`, Int64ID(-7)},
		{"max int64", `9223372036854775807`, Int64ID(math.MaxInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}
			if id != tt.want {
				t.Errorf("got %v, want %v", id, tt.want)
			}
		})
	}
}

func TestDecodeIDOverflow(t *testing.T) {
	// 2^63 is the first unrepresentable value in the signed domain.
	for _, input := range []string{"9223372036854775808", "18446744073709551615", "18446744073709551616"} {
		var id ID
		err := json.Unmarshal([]byte(input), &id)
		if err == nil {
			t.Fatalf("expected overflow error for %s", input)
		}

		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) || decodeErr.Kind != KindIDOverflow {
			t.Errorf("expected KindIDOverflow for %s, got %v", input, err)
		}
		if !strings.Contains(err.Error(), "number too large") {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestDecodeIDTypeMismatch(t *testing.T) {
	for input, wantType := range map[string]string{
		`true`:    "boolean",
		`1.5`:     "floating point",
		`[1]`:     "array",
		`{"a":1}`: "object",
	} {
		var id ID
		err := json.Unmarshal([]byte(input), &id)
		if err == nil {
			t.Fatalf("expected type error for %s", input)
		}
		if !strings.Contains(err.Error(), "invalid type: "+wantType) {
			t.Errorf("error %q does not name type %s", err.Error(), wantType)
		}
	}
}

func TestEncodeID(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{NullID(), `null`},
		{Int64ID(-12), `-12`},
		{Int64ID(math.MaxInt64), `9223372036854775807`},
		{StringID("foo bar"), `"foo bar"`},
	}

	for _, tt := range tests {
		encoded, err := json.Marshal(tt.id)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		if string(encoded) != tt.want {
			t.Errorf("got %s, want %s", encoded, tt.want)
		}
	}
}
