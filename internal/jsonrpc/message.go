// ABOUTME: The three JSON-RPC message shapes and their discriminating envelope
// ABOUTME: Notification, Request, Response, the Message sum, and Batch

package jsonrpc

// Message is the sum over the three message shapes. Classification of a wire
// object is structural: presence and shape of fields, not a tag.
type Message interface {
	isMessage()
}

func (*Notification) isMessage() {}
func (*Request) isMessage()      {}
func (*Response) isMessage()     {}

// AsNotification returns the concrete shape when m is a notification.
func AsNotification(m Message) (*Notification, bool) {
	n, ok := m.(*Notification)
	return n, ok
}

func AsRequest(m Message) (*Request, bool) {
	r, ok := m.(*Request)
	return r, ok
}

func AsResponse(m Message) (*Response, bool) {
	r, ok := m.(*Response)
	return r, ok
}

// Notification is a one-way call: no identifier, so it can never receive a
// reply.
type Notification struct {
	method string
	params *Parameters
}

func NewNotification(method string, params *Parameters) *Notification {
	return &Notification{method: method, params: params}
}

func (n *Notification) Method() string {
	return n.method
}

// Params returns nil when the notification carries no arguments.
func (n *Notification) Params() *Parameters {
	return n.params
}

// Request is a call bearing an identifier and expecting exactly one
// correlated response. The identifier must be concrete: a null id on the wire
// reads as field-absent, which makes the object a notification.
type Request struct {
	id     ID
	method string
	params *Parameters
}

func NewRequest(id ID, method string, params *Parameters) (*Request, error) {
	if id.IsNull() {
		return nil, errMissingField(fieldID)
	}

	return &Request{id: id, method: method, params: params}, nil
}

func (r *Request) ID() ID {
	return r.id
}

func (r *Request) Method() string {
	return r.method
}

func (r *Request) Params() *Parameters {
	return r.params
}

// Response is the reply to a request: exactly one of a success result or a
// structured error, never both and never neither. A success response requires
// a concrete id; an error response tolerates a null id, for failures detected
// before the request's own id could be read.
type Response struct {
	id     ID
	result RawValue
	err    *Error
}

func NewSuccessResponse(id ID, result RawValue) (*Response, error) {
	if id.IsNull() {
		return nil, errSuccessNeedsID()
	}

	if result == nil {
		result = RawValue("null")
	}

	return &Response{id: id, result: result}, nil
}

func NewErrorResponse(id ID, err *Error) *Response {
	return &Response{id: id, err: err}
}

func (r *Response) ID() ID {
	return r.id
}

func (r *Response) IsSuccess() bool {
	return r.err == nil
}

func (r *Response) IsError() bool {
	return r.err != nil
}

// Result returns the success payload when present.
func (r *Response) Result() (RawValue, bool) {
	return r.result, r.err == nil
}

// Err returns the failure payload when present.
func (r *Response) Err() (*Error, bool) {
	return r.err, r.err != nil
}

// BatchKind is the homogeneous side a batch belongs to. Notifications ride
// the call side: structurally they are requests without an id.
type BatchKind int

const (
	BatchCalls BatchKind = iota
	BatchResponses
)

// Batch is an ordered sequence of messages transmitted as one JSON array and
// decoded or encoded atomically. Under the homogeneous policy a batch is
// either all calls or all responses.
type Batch struct {
	kind     BatchKind
	messages []Message
}

// NewCallBatch builds a batch of requests and notifications.
func NewCallBatch(messages ...Message) (*Batch, error) {
	if len(messages) == 0 {
		return nil, errEmptyBatch()
	}

	for _, m := range messages {
		if _, ok := m.(*Response); ok {
			return nil, errInvalidType("", "response", "a request or a notification in a call batch")
		}
	}

	return &Batch{kind: BatchCalls, messages: messages}, nil
}

// NewResponseBatch builds a batch of responses.
func NewResponseBatch(responses ...*Response) (*Batch, error) {
	if len(responses) == 0 {
		return nil, errEmptyBatch()
	}

	messages := make([]Message, len(responses))
	for i, r := range responses {
		messages[i] = r
	}

	return &Batch{kind: BatchResponses, messages: messages}, nil
}

func (b *Batch) Kind() BatchKind {
	return b.kind
}

func (b *Batch) Messages() []Message {
	return b.messages
}

func (b *Batch) Len() int {
	return len(b.messages)
}
