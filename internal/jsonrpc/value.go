// ABOUTME: The external generic JSON value representation the codec consumes
// ABOUTME: Values are carried in their text form and never reinterpreted

package jsonrpc

import "encoding/json"

// RawValue is an already-parsed, well-formed generic JSON value in its text
// form. The codec classifies its top-level shape but otherwise treats it as
// owned by the external JSON layer.
type RawValue = json.RawMessage
