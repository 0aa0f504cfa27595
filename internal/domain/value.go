package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Kind discriminates the JSON type carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// Value is a tagged JSON value. It keeps the raw encoding it was decoded
// from and re-emits it verbatim on marshal, so arbitrary client payload
// fields survive storage and retrieval byte for byte.
type Value struct {
	kind Kind
	raw  json.RawMessage
}

var errEmptyValue = errors.New("empty JSON value")

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errEmptyValue
	}
	switch trimmed[0] {
	case '{':
		v.kind = KindObject
	case '[':
		v.kind = KindArray
	case '"':
		v.kind = KindString
	case 't', 'f':
		v.kind = KindBool
	case 'n':
		v.kind = KindNull
	default:
		v.kind = KindNumber
	}
	v.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.raw == nil {
		return []byte("null"), nil
	}
	return v.raw, nil
}

func (v Value) Kind() Kind { return v.kind }

// Raw returns the verbatim JSON encoding of the value.
func (v Value) Raw() json.RawMessage { return v.raw }

// AsString returns the decoded string and true when the value is a JSON
// string, "" and false otherwise.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", false
	}
	return s, true
}
