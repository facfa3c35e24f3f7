package models

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant stored in a Value. Every input the caller can
// supply resolves to exactly one of these categories; there is no "unknown".
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindChar
	KindDateTime
	KindEnum
	KindSequence
	KindMapping
)

// String returns the category name, mostly for error messages and debugging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindDateTime:
		return "datetime"
	case KindEnum:
		return "enum"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "invalid"
	}
}

// Enum carries the symbolic name and integer ordinal of an enumeration value.
type Enum struct {
	Name    string
	Ordinal int64
}

// Member is a single (key, value) pair of a Mapping. Mappings are ordered
// slices of members rather than Go maps so that key order is preserved
// exactly and duplicate keys pass through verbatim.
type Member struct {
	Key   string
	Value Value
}

// Value is the tagged union the serializer operates on. Exactly one payload
// field is meaningful, selected by Kind. Values are immutable once built.
type Value struct {
	Kind Kind

	BoolVal bool
	NumVal  string // canonical decimal text
	StrVal  string // String and Char payloads
	TimeVal time.Time
	EnumVal Enum
	Seq     []Value
	Map     []Member
}

// Record is implemented by record-like inputs that expose an ordered list of
// named members. Implementing it keeps the classifier out of reflection for
// that type; field order in the returned slice is the output order.
type Record interface {
	Fields() []Field
}

// Field is one named member exposed by a Record. The value may be any Go
// value; the classifier turns it into a Value recursively.
type Field struct {
	Name  string
	Value any
}

// Enumeration is implemented by Go values that want to serialize as an
// enum (symbolic name plus ordinal) rather than as a plain number.
type Enumeration interface {
	EnumName() string
	EnumOrdinal() int64
}

// Null returns the null Value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, BoolVal: b}
}

// Int returns a numeric Value holding an integer.
func Int(i int64) Value {
	return Value{Kind: KindNumber, NumVal: strconv.FormatInt(i, 10)}
}

// Uint returns a numeric Value holding an unsigned integer.
func Uint(u uint64) Value {
	return Value{Kind: KindNumber, NumVal: strconv.FormatUint(u, 10)}
}

// Float returns a numeric Value holding a float in its shortest decimal form.
func Float(f float64) Value {
	return Value{Kind: KindNumber, NumVal: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number returns a numeric Value from already-canonical decimal text, such
// as a json.Number. The text is emitted verbatim.
func Number(text string) Value {
	return Value{Kind: KindNumber, NumVal: text}
}

// String returns a string Value.
func String(s string) Value {
	return Value{Kind: KindString, StrVal: s}
}

// Char returns a character Value. Characters classify and render exactly
// like single-rune strings; the constructor exists because reflection cannot
// tell a rune apart from an int32.
func Char(r rune) Value {
	return Value{Kind: KindChar, StrVal: string(r)}
}

// Time returns a date-time Value.
func Time(t time.Time) Value {
	return Value{Kind: KindDateTime, TimeVal: t}
}

// EnumOf returns an enumeration Value.
func EnumOf(name string, ordinal int64) Value {
	return Value{Kind: KindEnum, EnumVal: Enum{Name: name, Ordinal: ordinal}}
}

// Sequence returns an ordered sequence Value. Elements may mix scalars and
// compounds freely.
func Sequence(elems ...Value) Value {
	return Value{Kind: KindSequence, Seq: elems}
}

// Mapping returns an ordered mapping Value. Member order is preserved in
// output and duplicate keys are not deduplicated.
func Mapping(members ...Member) Value {
	return Value{Kind: KindMapping, Map: members}
}

// Pair builds a single mapping member.
func Pair(key string, value Value) Member {
	return Member{Key: key, Value: value}
}

// IsCompound reports whether the value is a Sequence or Mapping, the only
// kinds that can expand into child lines.
func (v Value) IsCompound() bool {
	return v.Kind == KindSequence || v.Kind == KindMapping
}

// TimeText returns the ISO-8601 extended form of a date-time value.
func (v Value) TimeText() string {
	if v.TimeVal.Nanosecond() != 0 {
		return v.TimeVal.Format(time.RFC3339Nano)
	}
	return v.TimeVal.Format(time.RFC3339)
}

// String returns the default textual form of a value. This is the text used
// when depth truncation renders a compound as a quoted string: scalars
// appear as their inline token text, sequences as space-joined elements in
// brackets, mappings as comma-joined "key: value" pairs in braces.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.BoolVal)
	case KindNumber:
		return v.NumVal
	case KindString, KindChar:
		return v.StrVal
	case KindDateTime:
		return v.TimeText()
	case KindEnum:
		return v.EnumVal.Name
	case KindSequence:
		parts := make([]string, len(v.Seq))
		for i, e := range v.Seq {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindMapping:
		parts := make([]string, len(v.Map))
		for i, m := range v.Map {
			parts[i] = m.Key + ": " + m.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
