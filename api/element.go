package api

import (
	jsoniter "github.com/json-iterator/go"
)

// Element is a decoded top-level JSON value. Elements produced by a Service
// are always an object or an array.
type Element struct {
	raw  []byte
	kind jsoniter.ValueType
}

// Kind returns the JSON type of the element.
func (e Element) Kind() jsoniter.ValueType { return e.kind }

// IsObject reports whether the element is a JSON object.
func (e Element) IsObject() bool { return e.kind == jsoniter.ObjectValue }

// IsArray reports whether the element is a JSON array.
func (e Element) IsArray() bool { return e.kind == jsoniter.ArrayValue }

// Raw returns the element's JSON text.
func (e Element) Raw() []byte { return e.raw }

// Get looks up a nested value, e.g. Get("results", 0, "brewery_name").
func (e Element) Get(path ...any) jsoniter.Any {
	return jsoniter.Get(e.raw, path...)
}

func (e Element) String() string { return string(e.raw) }

func kindName(kind jsoniter.ValueType) string {
	switch kind {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "boolean"
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.ObjectValue:
		return "object"
	default:
		return "invalid"
	}
}
