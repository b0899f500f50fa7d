package jsonnode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parse decodes a single JSON value from data. Trailing content after the
// value is rejected.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("parse document: %w", err)
		}
		return nil, fmt.Errorf("parse document: unexpected content at offset %d", dec.InputOffset())
	}
	return node, nil
}

func parseValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse document: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("parse document: %w", err)
	}
	switch v := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", v.String(), err)
		}
		return NewNumber(f), nil
	case string:
		return NewString(v), nil
	case json.Delim:
		switch v {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
	}
	return nil, fmt.Errorf("parse document: unexpected token %v at offset %d", tok, dec.InputOffset())
}

func parseObject(dec *json.Decoder) (*Node, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parse object key: unexpected token %v", tok)
		}
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse object end: %w", err)
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (*Node, error) {
	arr := NewArray()
	for dec.More() {
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse array end: %w", err)
	}
	return arr, nil
}
