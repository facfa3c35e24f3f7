// Package classifier categorizes arbitrary Go values into the models.Value
// tagged union. All reflection lives here; the emitter only ever sees the
// union. Classification never fails: anything that is not a recognized
// scalar or sequence is treated as a mapping of its visible named members.
package classifier

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/mcncl/csonify/internal/models"
)

// Classify converts any Go value into a Value. The rules, in order:
//
//   - nil becomes Null.
//   - models.Value passes through unchanged.
//   - models.Enumeration implementors become Enum.
//   - models.Record implementors become Mapping in declared field order.
//   - bool, string, numeric kinds, json.Number, and time.Time map to their
//     scalar categories.
//   - slices and arrays become Sequence.
//   - maps with string-convertible keys become Mapping with sorted keys
//     (Go maps carry no insertion order; callers that need a specific order
//     supply a models.Mapping or a Record).
//   - pointers and interfaces are dereferenced, nil ones become Null.
//   - anything else is reflected into a Mapping of its exported fields.
func Classify(v any) models.Value {
	switch t := v.(type) {
	case nil:
		return models.Null()
	case models.Value:
		return t
	case models.Enumeration:
		return models.EnumOf(t.EnumName(), t.EnumOrdinal())
	case models.Record:
		return classifyRecord(t)
	case bool:
		return models.Bool(t)
	case string:
		return models.String(t)
	case json.Number:
		return models.Number(string(t))
	case time.Time:
		return models.Time(t)
	case int:
		return models.Int(int64(t))
	case int8:
		return models.Int(int64(t))
	case int16:
		return models.Int(int64(t))
	case int32:
		return models.Int(int64(t))
	case int64:
		return models.Int(t)
	case uint:
		return models.Uint(uint64(t))
	case uint8:
		return models.Uint(uint64(t))
	case uint16:
		return models.Uint(uint64(t))
	case uint32:
		return models.Uint(uint64(t))
	case uint64:
		return models.Uint(t)
	case float32:
		return models.Float(float64(t))
	case float64:
		return models.Float(t)
	}

	return classifyReflect(reflect.ValueOf(v))
}

func classifyRecord(r models.Record) models.Value {
	fields := r.Fields()
	members := make([]models.Member, 0, len(fields))
	for _, f := range fields {
		members = append(members, models.Pair(f.Name, Classify(f.Value)))
	}
	return models.Mapping(members...)
}

func classifyReflect(val reflect.Value) models.Value {
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return models.Null()
		}
		return Classify(val.Elem().Interface())
	case reflect.Bool:
		return models.Bool(val.Bool())
	case reflect.String:
		return models.String(val.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.Int(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return models.Uint(val.Uint())
	case reflect.Float32, reflect.Float64:
		return models.Float(val.Float())
	case reflect.Slice, reflect.Array:
		elems := make([]models.Value, val.Len())
		for i := range elems {
			elems[i] = Classify(val.Index(i).Interface())
		}
		return models.Sequence(elems...)
	case reflect.Map:
		return classifyMap(val)
	case reflect.Struct:
		return classifyStruct(val)
	default:
		// Funcs, channels and the like expose no named members; they
		// reflect into an empty mapping rather than failing.
		return models.Mapping()
	}
}

// classifyMap renders a Go map as a mapping with keys in sorted order, the
// only deterministic order a Go map can offer. Distinct keys that render to
// the same text (say, 1 and "1" under any-typed keys) each keep their
// member; they come out as duplicate keys.
func classifyMap(val reflect.Value) models.Value {
	keys := val.MapKeys()
	members := make([]models.Member, 0, len(keys))
	for _, k := range keys {
		members = append(members, models.Pair(keyText(k), Classify(val.MapIndex(k).Interface())))
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Key < members[j].Key
	})
	return models.Mapping(members...)
}

func keyText(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return Classify(k.Interface()).String()
}

// classifyStruct reflects the exported fields of a struct, in declaration
// order, into mapping members. A `cson:"name"` tag overrides the member
// name and `cson:"-"` skips the field.
func classifyStruct(val reflect.Value) models.Value {
	t := val.Type()
	members := make([]models.Member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("cson"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		members = append(members, models.Pair(name, Classify(val.Field(i).Interface())))
	}
	return models.Mapping(members...)
}
