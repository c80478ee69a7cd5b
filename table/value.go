package table

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the scalar types a Column can hold.
type Kind uint8

const (
	// KindInt holds int64 values.
	KindInt Kind = iota
	// KindFloat holds float64 values.
	KindFloat
	// KindString holds text.
	KindString
	// KindBool holds booleans.
	KindBool
	// KindDate holds calendar dates (UTC midnight).
	KindDate
	// KindDateTime holds instants with nanosecond precision.
	KindDateTime
)

// Layouts used to render and parse temporal values.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339Nano

	// NullToken is the textual form of a null value.
	NullToken = "NA"
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsNumeric reports whether values of this kind carry a real number.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// IsTemporal reports whether values of this kind carry a date or an instant.
func (k Kind) IsTemporal() bool {
	return k == KindDate || k == KindDateTime
}

// Value is a single typed cell. The zero Value is a non-null int 0.
//
// Value is comparable with ==, but float NaN payloads never compare equal;
// use Key when a value has to index a map.
type Value struct {
	kind Kind
	null bool
	i    int64 // KindInt payload; unix nanoseconds for KindDate/KindDateTime
	f    float64
	s    string
	b    bool
}

// Int returns a non-null int value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a non-null float value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a non-null string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a non-null bool value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Date returns the calendar date of t (taken in t's location) as a UTC-midnight value.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, i: time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixNano()}
}

// DateTime returns an instant value.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, i: t.UnixNano()} }

// Null returns the null value of the given kind.
func Null(k Kind) Value { return Value{kind: k, null: true} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is a null marker.
func (v Value) IsNull() bool { return v.null }

// Float64 returns the numeric payload of an int or float value.
// Nulls and non-numeric kinds yield NaN and false.
func (v Value) Float64() (float64, bool) {
	if v.null {
		return math.NaN(), false
	}
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return math.NaN(), false
	}
}

// String renders v the way WriteCSV does; nulls render as NullToken.
func (v Value) String() string {
	if v.null {
		return NullToken
	}
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return time.Unix(0, v.i).UTC().Format(DateLayout)
	case KindDateTime:
		return time.Unix(0, v.i).UTC().Format(DateTimeLayout)
	default:
		return ""
	}
}

// Key returns an injective text encoding of v (kind included), usable as a
// map key. Two values share a Key iff they are the same kind and payload,
// or both are nulls of the same kind. NaN floats share one key.
func (v Value) Key() string {
	var sb strings.Builder
	sb.WriteByte(byte('a' + v.kind))
	if v.null {
		sb.WriteByte('_')
		return sb.String()
	}
	switch v.kind {
	case KindFloat:
		f := v.f
		if f == 0 {
			f = 0 // -0 and +0 are one value
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case KindString:
		// length prefix keeps composite keys unambiguous
		sb.WriteString(strconv.Itoa(len(v.s)))
		sb.WriteByte(':')
		sb.WriteString(v.s)
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	default:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	}
	return sb.String()
}

// Equal reports whether a and b have the same Key.
func Equal(a, b Value) bool {
	return a.Key() == b.Key()
}
