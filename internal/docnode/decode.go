package docnode

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads one JSON document from r and builds a Node tree, preserving
// object key order. This is the reference structured-document loader the
// specification treats as an external collaborator (§1, "Reading JSON bytes
// from disk or buffer... is assumed"); it exists so the parser packages
// have a real input to run against, but none of them import this file or
// encoding/json themselves.
//
// Numbers that parse as a Go int64 become Integer nodes; everything else
// numeric (fractional or out of int64 range) becomes a Real node carrying
// the original text, matching the specification's "real is accepted in no
// slot" rule — Real exists to be rejected with a good error message, not to
// be computed with.
func Decode(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	n, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("docnode: trailing data after document")
	}
	return n, nil
}

// DecodeBytes is a convenience wrapper around Decode for in-memory input.
func DecodeBytes(b []byte) (*Node, error) {
	return Decode(&jsonReader{b})
}

type jsonReader struct{ b []byte }

func (r *jsonReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("docnode: unexpected delimiter %q", v)
		}
	case string:
		return NewString(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return NewInteger(i), nil
		}
		return NewReal(v.String()), nil
	case bool:
		return NewBoolean(v), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("docnode: unrecognised token %T", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("docnode: object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	arr := &Node{Kind: Array}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.items = append(arr.items, val)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
