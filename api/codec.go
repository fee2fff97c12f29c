package api

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	apperrors "github.com/kbukum/untappd/errors"
)

// Codec maps between JSON text and Go values. It is immutable once built and
// safe for concurrent use.
type Codec struct {
	api jsoniter.API
}

// DefaultCodec has no custom decoding rules.
var DefaultCodec = NewCodec()

// NewCodec builds a codec. Extensions add per-type decoding rules; none are
// needed for plain struct-tag mapping.
func NewCodec(extensions ...jsoniter.Extension) *Codec {
	cfg := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	for _, ext := range extensions {
		cfg.RegisterExtension(ext)
	}
	return &Codec{api: cfg}
}

// Parse validates data and returns it as an Element. The body must hold
// exactly one JSON object or array.
func (c *Codec) Parse(data []byte) (Element, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Element{}, apperrors.ContentFormat("Empty response body.", nil)
	}

	iter := c.api.BorrowIterator(data)
	defer c.api.ReturnIterator(iter)

	kind := iter.WhatIsNext()
	if kind != jsoniter.ObjectValue && kind != jsoniter.ArrayValue {
		return Element{}, apperrors.ContentFormat(
			fmt.Sprintf("Unknown content found in response: expected object or array, got %s.", kindName(kind)), nil)
	}
	iter.Skip()
	if iter.Error != nil {
		return Element{}, apperrors.ContentFormat("Malformed JSON in response body.", iter.Error)
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return Element{}, apperrors.ContentFormat("Unexpected data after the JSON value in response body.", nil)
	}
	return Element{raw: data, kind: kind}, nil
}

// Decode maps an element onto v.
func (c *Codec) Decode(e Element, v any) error {
	if len(e.raw) == 0 {
		return apperrors.ContentFormat("Cannot decode an empty element.", nil)
	}
	return c.Unmarshal(e.raw, v)
}

// DecodeString maps JSON text onto v.
func (c *Codec) DecodeString(s string, v any) error {
	if err := c.api.UnmarshalFromString(s, v); err != nil {
		return apperrors.ContentFormat(fmt.Sprintf("Unable to decode into %T.", v), err)
	}
	return nil
}

// Unmarshal maps JSON bytes onto v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	if err := c.api.Unmarshal(data, v); err != nil {
		return apperrors.ContentFormat(fmt.Sprintf("Unable to decode into %T.", v), err)
	}
	return nil
}

// Marshal serializes v in compact form.
func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := c.api.Marshal(v)
	if err != nil {
		return nil, apperrors.Encode(err)
	}
	return data, nil
}

// MarshalIndent serializes v with two-space indentation.
func (c *Codec) MarshalIndent(v any) ([]byte, error) {
	data, err := c.api.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, apperrors.Encode(err)
	}
	return data, nil
}
