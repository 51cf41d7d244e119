package entity

import (
	"encoding/json"
	"strconv"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "null"
	}
}

// Value is a single dataset cell: a string, a number or null.
//
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
}

func Null() Value {
	return Value{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Integer(n int64) Value {
	return Value{kind: KindInteger, num: n}
}

// Float builds a float cell. Callers must not pass NaN or infinities, they
// have no JSON representation.
func Float(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Any returns the Go value held by the cell: string, int64, float64 or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return v.num
	case KindFloat:
		return v.flt
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindInteger:
		return strconv.AppendInt(nil, v.num, 10), nil
	case KindFloat:
		return json.Marshal(v.flt)
	default:
		return []byte("null"), nil
	}
}
