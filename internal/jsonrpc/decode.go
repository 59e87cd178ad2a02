// ABOUTME: Validating decode from generic JSON documents to message values
// ABOUTME: Accumulate-then-validate field walks, ordered-trial classification, batches

package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// jsonTypeName classifies the top-level shape of a well-formed JSON value for
// diagnostics. Numbers are split into integer and floating point because the
// grammar treats them differently.
func jsonTypeName(raw RawValue) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty document"
	}

	switch trimmed[0] {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		if bytes.ContainsAny(trimmed, ".eE") {
			return "floating point"
		}
		return "integer"
	}
}

// walkObject drives one accumulate-then-validate pass over a JSON object's
// entries. Each field name is checked against the allowed table and for
// duplicates before its value is handed to visit. The caller checks required
// fields and cross-field invariants once the walk completes.
func walkObject(data RawValue, allowed []string, visit func(field string, value RawValue) error) error {
	if name := jsonTypeName(data); name != "object" {
		return errInvalidType("", name, "an object")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil {
		return errInvalidType("", "malformed document", "an object")
	}

	seen := make(map[string]bool, len(allowed))

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errInvalidType("", "malformed document", "an object")
		}

		field, ok := tok.(string)
		if !ok {
			return errInvalidType("", "malformed document", "an object")
		}

		if !fieldAllowed(field, allowed) {
			return errUnknownField(field, allowed)
		}

		if seen[field] {
			return errDuplicateField(field)
		}
		seen[field] = true

		var value RawValue
		if err := dec.Decode(&value); err != nil {
			return errInvalidType(field, "malformed value", "a JSON value")
		}

		if err := visit(field, value); err != nil {
			return err
		}
	}

	return nil
}

func fieldAllowed(field string, allowed []string) bool {
	for _, name := range allowed {
		if name == field {
			return true
		}
	}

	return false
}

func decodeString(field string, value RawValue) (string, error) {
	if name := jsonTypeName(value); name != "string" {
		return "", errInvalidType(field, name, "a string")
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", errInvalidType(field, "malformed string", "a string")
	}

	return s, nil
}

func decodeInt64(field string, value RawValue) (int64, error) {
	if name := jsonTypeName(value); name != "integer" {
		return 0, errInvalidType(field, name, "a 64-bit signed integer")
	}

	n, err := strconv.ParseInt(string(bytes.TrimSpace(value)), 10, 64)
	if err != nil {
		return 0, errIDOverflow(field)
	}

	return n, nil
}

// decodeID accepts null, a string, or an integer inside the signed 64-bit
// range. An integer above that range fails with the dedicated overflow error
// rather than wrapping or truncating.
func decodeID(field string, value RawValue) (ID, error) {
	switch name := jsonTypeName(value); name {
	case "null":
		return NullID(), nil
	case "string":
		s, err := decodeString(field, value)
		if err != nil {
			return ID{}, err
		}
		return StringID(s), nil
	case "integer":
		n, err := strconv.ParseInt(string(bytes.TrimSpace(value)), 10, 64)
		if err != nil {
			return ID{}, errIDOverflow(field)
		}
		return Int64ID(n), nil
	default:
		return ID{}, errInvalidType(field, name, "null, a string or a 64-bit signed integer")
	}
}

// UnmarshalJSON decodes a bare identifier value.
func (id *ID) UnmarshalJSON(data []byte) error {
	decoded, err := decodeID("", data)
	if err != nil {
		return err
	}

	*id = decoded
	return nil
}

func decodeParams(field string, value RawValue) (*Parameters, error) {
	switch name := jsonTypeName(value); name {
	case "array":
		var elements []RawValue
		if err := json.Unmarshal(value, &elements); err != nil {
			return nil, errInvalidType(field, "malformed array", "an array")
		}

		if len(elements) == 0 {
			return ArrayParameters(), nil
		}

		values := make([]RawValue, len(elements))
		for i, el := range elements {
			values[i] = append(RawValue(nil), el...)
		}

		return ArrayParameters(values...), nil
	case "object":
		members, err := decodeOrderedObject(field, value)
		if err != nil {
			return nil, err
		}

		return &Parameters{kind: paramsObject, object: members}, nil
	default:
		return nil, errInvalidType(field, name, "an array or an object")
	}
}

// decodeOrderedObject walks an arbitrary JSON object preserving member order
// and rejecting duplicate keys. Unlike walkObject, any member name is valid.
func decodeOrderedObject(field string, value RawValue) ([]ObjectMember, error) {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil {
		return nil, errInvalidType(field, "malformed object", "an object")
	}

	var members []ObjectMember
	seen := make(map[string]bool)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errInvalidType(field, "malformed object", "an object")
		}

		name, ok := tok.(string)
		if !ok {
			return nil, errInvalidType(field, "malformed object", "an object")
		}

		if seen[name] {
			return nil, errDuplicateField(name)
		}
		seen[name] = true

		var member RawValue
		if err := dec.Decode(&member); err != nil {
			return nil, errInvalidType(field, "malformed object", "an object")
		}

		members = append(members, ObjectMember{Name: name, Value: append(RawValue(nil), member...)})
	}

	return members, nil
}

// UnmarshalJSON decodes a bare parameters value.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	decoded, err := decodeParams("", data)
	if err != nil {
		return err
	}

	*p = *decoded
	return nil
}

// UnmarshalJSON decodes an error object. The `code` field is piped through
// the ErrorCode validator; `data` accepts any JSON shape and is stored
// unevaluated, with a literal null reading as absent.
func (e *Error) UnmarshalJSON(data []byte) error {
	var (
		code    *ErrorCode
		message *string
		payload ErrorData
	)

	err := walkObject(data, errorFields, func(field string, value RawValue) error {
		switch field {
		case fieldCode:
			n, err := decodeInt64(fieldCode, value)
			if err != nil {
				return err
			}

			parsed, codeErr := NewErrorCode(n)
			if codeErr != nil {
				return errInvalidErrorCode(fieldCode)
			}

			code = &parsed
		case fieldMessage:
			s, err := decodeString(fieldMessage, value)
			if err != nil {
				return err
			}

			message = &s
		case fieldData:
			if jsonTypeName(value) != "null" {
				payload = append(ErrorData(nil), value...)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if code == nil {
		return errMissingField(fieldCode)
	}
	if message == nil {
		return errMissingField(fieldMessage)
	}

	e.code = *code
	e.message = *message
	e.data = payload
	return nil
}

// UnmarshalJSON decodes a notification: `jsonrpc` and `method` required, an
// `id` field of any value is unknown here.
func (n *Notification) UnmarshalJSON(data []byte) error {
	var (
		version *string
		method  *string
		params  *Parameters
	)

	err := walkObject(data, notificationFields, func(field string, value RawValue) error {
		switch field {
		case fieldJSONRPC:
			s, err := decodeString(fieldJSONRPC, value)
			if err != nil {
				return err
			}

			version = &s
		case fieldMethod:
			s, err := decodeString(fieldMethod, value)
			if err != nil {
				return err
			}

			method = &s
		case fieldParams:
			if jsonTypeName(value) == "null" {
				return nil
			}

			decoded, err := decodeParams(fieldParams, value)
			if err != nil {
				return err
			}

			params = decoded
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := checkVersion(version); err != nil {
		return err
	}
	if method == nil {
		return errMissingField(fieldMethod)
	}

	n.method = *method
	n.params = params
	return nil
}

// UnmarshalJSON decodes a request. A literal null id reads as field-absent,
// so an object without a concrete id fails here and classifies as a
// notification instead.
func (r *Request) UnmarshalJSON(data []byte) error {
	var (
		version *string
		method  *string
		params  *Parameters
	)
	id := NullID()

	err := walkObject(data, requestFields, func(field string, value RawValue) error {
		switch field {
		case fieldJSONRPC:
			s, err := decodeString(fieldJSONRPC, value)
			if err != nil {
				return err
			}

			version = &s
		case fieldID:
			decoded, err := decodeID(fieldID, value)
			if err != nil {
				return err
			}

			id = decoded
		case fieldMethod:
			s, err := decodeString(fieldMethod, value)
			if err != nil {
				return err
			}

			method = &s
		case fieldParams:
			if jsonTypeName(value) == "null" {
				return nil
			}

			decoded, err := decodeParams(fieldParams, value)
			if err != nil {
				return err
			}

			params = decoded
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := checkVersion(version); err != nil {
		return err
	}
	if method == nil {
		return errMissingField(fieldMethod)
	}
	if id.IsNull() {
		return errMissingField(fieldID)
	}

	r.id = id
	r.method = *method
	r.params = params
	return nil
}

// UnmarshalJSON decodes a response. Exactly one of `result` and `error` must
// be present; a success additionally requires a concrete id, while an error
// reply tolerates a null or absent id.
func (r *Response) UnmarshalJSON(data []byte) error {
	var (
		version    *string
		result     RawValue
		seenResult bool
		respErr    *Error
	)
	id := NullID()

	err := walkObject(data, responseFields, func(field string, value RawValue) error {
		switch field {
		case fieldJSONRPC:
			s, err := decodeString(fieldJSONRPC, value)
			if err != nil {
				return err
			}

			version = &s
		case fieldID:
			decoded, err := decodeID(fieldID, value)
			if err != nil {
				return err
			}

			id = decoded
		case fieldResult:
			result = append(RawValue(nil), value...)
			seenResult = true
		case fieldError:
			if name := jsonTypeName(value); name != "object" {
				return errInvalidType(fieldError, name, "an error object")
			}

			decoded := new(Error)
			if err := decoded.UnmarshalJSON(value); err != nil {
				return err
			}

			respErr = decoded
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := checkVersion(version); err != nil {
		return err
	}

	switch {
	case seenResult && respErr != nil:
		return errAmbiguousPayload()
	case !seenResult && respErr == nil:
		return errMissingPayload()
	case seenResult:
		if id.IsNull() {
			return errSuccessNeedsID()
		}

		r.id = id
		r.result = result
		r.err = nil
	default:
		r.id = id
		r.result = nil
		r.err = respErr
	}

	return nil
}

func checkVersion(version *string) error {
	if version == nil {
		return errMissingField(fieldJSONRPC)
	}
	if *version != Version {
		return errVersionMismatch(*version)
	}

	return nil
}

// DecodeMessage classifies a JSON object by ordered trial: request first,
// then notification, then response. When every attempt fails, the error
// aggregates all three reasons.
func DecodeMessage(data RawValue) (Message, error) {
	if name := jsonTypeName(data); name != "object" {
		return nil, errInvalidType("", name, "an object")
	}

	req := new(Request)
	reqErr := req.UnmarshalJSON(data)
	if reqErr == nil {
		return req, nil
	}

	notif := new(Notification)
	notifErr := notif.UnmarshalJSON(data)
	if notifErr == nil {
		return notif, nil
	}

	resp := new(Response)
	respErr := resp.UnmarshalJSON(data)
	if respErr == nil {
		return resp, nil
	}

	return nil, errUnclassifiable(reqErr, notifErr, respErr)
}

// DecodeBatch decodes a JSON array under the homogeneous-batch policy: the
// first element fixes the batch kind and every later element must match it. A
// single malformed or mixed-kind element fails the whole batch.
func DecodeBatch(data RawValue) (*Batch, error) {
	if name := jsonTypeName(data); name != "array" {
		return nil, errInvalidType("", name, "an array")
	}

	var elements []RawValue
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, errInvalidType("", "malformed array", "an array")
	}

	if len(elements) == 0 {
		return nil, errEmptyBatch()
	}

	batch := &Batch{messages: make([]Message, 0, len(elements))}

	for i, element := range elements {
		message, err := DecodeMessage(element)
		if err != nil {
			return nil, fmt.Errorf("batch element %d: %w", i, err)
		}

		kind := BatchCalls
		if _, ok := message.(*Response); ok {
			kind = BatchResponses
		}

		if i == 0 {
			batch.kind = kind
		} else if kind != batch.kind {
			return nil, errMixedBatch(i)
		}

		batch.messages = append(batch.messages, message)
	}

	return batch, nil
}

// UnmarshalJSON decodes a batch array.
func (b *Batch) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeBatch(data)
	if err != nil {
		return err
	}

	*b = *decoded
	return nil
}
