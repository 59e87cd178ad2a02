// ABOUTME: Request/notification argument payload: positional array or named object
// ABOUTME: Named parameters keep insertion order and reject duplicate keys

package jsonrpc

type paramsKind int

const (
	paramsArray paramsKind = iota
	paramsObject
)

// ObjectMember is one named parameter. Members keep the order they appeared
// in, both on the wire and through a round trip.
type ObjectMember struct {
	Name  string
	Value RawValue
}

// Parameters is the argument payload of a request or notification. Exactly
// one of the two shapes is present; an absent payload is represented by a nil
// *Parameters on the containing message.
type Parameters struct {
	kind   paramsKind
	array  []RawValue
	object []ObjectMember
}

func ArrayParameters(values ...RawValue) *Parameters {
	return &Parameters{kind: paramsArray, array: values}
}

// ObjectParameters builds named parameters, rejecting duplicate member names
// with the same error type the decoder uses.
func ObjectParameters(members ...ObjectMember) (*Parameters, error) {
	seen := make(map[string]bool, len(members))
	for _, member := range members {
		if seen[member.Name] {
			return nil, errDuplicateField(member.Name)
		}
		seen[member.Name] = true
	}

	return &Parameters{kind: paramsObject, object: members}, nil
}

func (p *Parameters) IsArray() bool {
	return p.kind == paramsArray
}

func (p *Parameters) IsObject() bool {
	return p.kind == paramsObject
}

func (p *Parameters) AsArray() ([]RawValue, bool) {
	return p.array, p.kind == paramsArray
}

func (p *Parameters) AsObject() ([]ObjectMember, bool) {
	return p.object, p.kind == paramsObject
}

// Len is the number of positional values or named members.
func (p *Parameters) Len() int {
	if p.kind == paramsArray {
		return len(p.array)
	}

	return len(p.object)
}
