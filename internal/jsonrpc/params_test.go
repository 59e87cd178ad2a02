// ABOUTME: Tests for positional and named parameter payloads
// ABOUTME: Shape discrimination, duplicate keys, and insertion order

package jsonrpc

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestArrayParameters(t *testing.T) {
	p := ArrayParameters(RawValue(`1`), RawValue(`"test"`), RawValue(`true`))

	if !p.IsArray() || p.IsObject() {
		t.Error("expected an array payload")
	}
	if p.Len() != 3 {
		t.Errorf("expected length 3, got %d", p.Len())
	}

	values, ok := p.AsArray()
	if !ok || string(values[1]) != `"test"` {
		t.Errorf("AsArray returned %v, %v", values, ok)
	}
	if _, ok := p.AsObject(); ok {
		t.Error("AsObject should report false for an array")
	}
}

func TestObjectParameters(t *testing.T) {
	p, err := ObjectParameters(
		ObjectMember{Name: "val1", Value: RawValue(`1`)},
		ObjectMember{Name: "val2", Value: RawValue(`true`)},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !p.IsObject() || p.IsArray() {
		t.Error("expected an object payload")
	}

	members, ok := p.AsObject()
	if !ok || len(members) != 2 {
		t.Fatalf("AsObject returned %v, %v", members, ok)
	}
	if members[0].Name != "val1" || members[1].Name != "val2" {
		t.Error("member order not preserved")
	}
}

func TestObjectParametersDuplicateKey(t *testing.T) {
	_, err := ObjectParameters(
		ObjectMember{Name: "k", Value: RawValue(`1`)},
		ObjectMember{Name: "k", Value: RawValue(`2`)},
	)
	if err == nil {
		t.Fatal("expected duplicate key rejection")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Kind != KindDuplicateField {
		t.Errorf("expected KindDuplicateField, got %v", err)
	}
}

func TestDecodeParameters(t *testing.T) {
	var p Parameters
	if err := json.Unmarshal([]byte(`{"b":1,"a":2,"c":3}`), &p); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	members, ok := p.AsObject()
	if !ok {
		t.Fatal("expected an object payload")
	}

	got := make([]string, len(members))
	for i, m := range members {
		got[i] = m.Name
	}
	if strings.Join(got, ",") != "b,a,c" {
		t.Errorf("insertion order not preserved: %v", got)
	}
}

func TestDecodeParametersDuplicateKey(t *testing.T) {
	var p Parameters
	err := json.Unmarshal([]byte(`{"k":1,"k":2}`), &p)
	if err == nil {
		t.Fatal("expected duplicate key rejection")
	}
	if !strings.Contains(err.Error(), "duplicate field `k`") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestDecodeParametersWrongShape(t *testing.T) {
	for _, doc := range []string{`1`, `"s"`, `true`, `null`} {
		var p Parameters
		err := json.Unmarshal([]byte(doc), &p)
		if err == nil {
			t.Fatalf("expected rejection for %s", doc)
		}
		if !strings.Contains(err.Error(), "expected an array or an object") {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestParametersRoundTrip(t *testing.T) {
	for _, doc := range []string{`[]`, `[1,"two",null]`, `{}`, `{"z":1,"a":{"nested":true}}`} {
		var p Parameters
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			t.Fatalf("failed to unmarshal %s: %v", doc, err)
		}

		encoded, err := json.Marshal(&p)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		if string(encoded) != doc {
			t.Errorf("round trip changed %s into %s", doc, encoded)
		}
	}
}
