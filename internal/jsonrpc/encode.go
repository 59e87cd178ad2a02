// ABOUTME: Wire encoding for validated message values
// ABOUTME: Fixed field order, absent optionals omitted, total for valid objects

package jsonrpc

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON emits the identifier's natural JSON shape: null, integer, or
// string.
func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case IDInt64:
		return strconv.AppendInt(nil, id.num, 10), nil
	case IDString:
		return json.Marshal(id.str)
	default:
		return []byte("null"), nil
	}
}

// MarshalJSON emits positional parameters as an array and named parameters as
// an object in insertion order.
func (p *Parameters) MarshalJSON() ([]byte, error) {
	if p.kind == paramsArray {
		if len(p.array) == 0 {
			return []byte("[]"), nil
		}

		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, value := range p.array {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(value)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, member := range p.object {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(member.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(member.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON emits {code, message, data?}; absent data is omitted entirely.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    int64     `json:"code"`
		Message string    `json:"message"`
		Data    ErrorData `json:"data,omitempty"`
	}{
		Code:    e.code.Int64(),
		Message: e.message,
		Data:    e.data,
	})
}

func (n *Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string      `json:"jsonrpc"`
		Method  string      `json:"method"`
		Params  *Parameters `json:"params,omitempty"`
	}{
		JSONRPC: Version,
		Method:  n.method,
		Params:  n.params,
	})
}

func (r *Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string      `json:"jsonrpc"`
		ID      ID          `json:"id"`
		Method  string      `json:"method"`
		Params  *Parameters `json:"params,omitempty"`
	}{
		JSONRPC: Version,
		ID:      r.id,
		Method:  r.method,
		Params:  r.params,
	})
}

// MarshalJSON emits exactly the branch present. An error reply's null id is
// emitted as a literal null: present-as-null is meaningful there.
func (r *Response) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(struct {
			JSONRPC string `json:"jsonrpc"`
			ID      ID     `json:"id"`
			Error   *Error `json:"error"`
		}{
			JSONRPC: Version,
			ID:      r.id,
			Error:   r.err,
		})
	}

	return json.Marshal(struct {
		JSONRPC string   `json:"jsonrpc"`
		ID      ID       `json:"id"`
		Result  RawValue `json:"result"`
	}{
		JSONRPC: Version,
		ID:      r.id,
		Result:  r.result,
	})
}

// MarshalJSON emits the batch as a JSON array of its messages in order.
func (b *Batch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, message := range b.messages {
		if i > 0 {
			buf.WriteByte(',')
		}

		encoded, err := json.Marshal(message)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
