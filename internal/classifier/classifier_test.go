package classifier

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mcncl/csonify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Scalars(t *testing.T) {
	assert.Equal(t, models.KindNull, Classify(nil).Kind)
	assert.Equal(t, models.Bool(true), Classify(true))
	assert.Equal(t, models.String("x"), Classify("x"))
	assert.Equal(t, models.Int(7), Classify(7))
	assert.Equal(t, models.Int(-7), Classify(int8(-7)))
	assert.Equal(t, models.Uint(7), Classify(uint16(7)))
	assert.Equal(t, models.Float(2.5), Classify(2.5))
	assert.Equal(t, models.Number("1.50"), Classify(json.Number("1.50")))
}

func TestClassify_Time(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v := Classify(ts)
	assert.Equal(t, models.KindDateTime, v.Kind)
	assert.Equal(t, "2024-01-02T03:04:05Z", v.TimeText())
}

func TestClassify_ValuePassesThrough(t *testing.T) {
	v := models.EnumOf("Red", 0)
	assert.Equal(t, v, Classify(v))
}

func TestClassify_Slices(t *testing.T) {
	v := Classify([]any{1, "two", true, nil})
	require.Equal(t, models.KindSequence, v.Kind)
	require.Len(t, v.Seq, 4)
	assert.Equal(t, models.KindNumber, v.Seq[0].Kind)
	assert.Equal(t, models.KindString, v.Seq[1].Kind)
	assert.Equal(t, models.KindBool, v.Seq[2].Kind)
	assert.Equal(t, models.KindNull, v.Seq[3].Kind)
}

func TestClassify_MapKeysSorted(t *testing.T) {
	v := Classify(map[string]int{"b": 2, "a": 1, "c": 3})
	require.Equal(t, models.KindMapping, v.Kind)
	require.Len(t, v.Map, 3)
	assert.Equal(t, "a", v.Map[0].Key)
	assert.Equal(t, "b", v.Map[1].Key)
	assert.Equal(t, "c", v.Map[2].Key)
}

func TestClassify_IntKeyedMap(t *testing.T) {
	v := Classify(map[int]string{10: "ten", 2: "two"})
	require.Equal(t, models.KindMapping, v.Kind)
	require.Len(t, v.Map, 2)
	// Keys become their textual form and sort as strings.
	assert.Equal(t, "10", v.Map[0].Key)
	assert.Equal(t, "2", v.Map[1].Key)
}

func TestClassify_MapKeysWithSameText(t *testing.T) {
	// int 1 and string "1" render to the same key text; both members must
	// survive as duplicate keys.
	v := Classify(map[any]string{1: "a", "1": "b"})
	require.Equal(t, models.KindMapping, v.Kind)
	require.Len(t, v.Map, 2)
	assert.Equal(t, "1", v.Map[0].Key)
	assert.Equal(t, "1", v.Map[1].Key)
	assert.ElementsMatch(t,
		[]string{"a", "b"},
		[]string{v.Map[0].Value.StrVal, v.Map[1].Value.StrVal},
	)
}

type address struct {
	Street string
	City   string
}

type person struct {
	Name    string
	Age     int
	Home    address
	Tags    []string
	hidden  string
	Renamed string `cson:"alias"`
	Skipped string `cson:"-"`
}

func TestClassify_StructFieldsInDeclarationOrder(t *testing.T) {
	p := person{
		Name:    "Ada",
		Age:     36,
		Home:    address{Street: "Main St", City: "London"},
		Tags:    []string{"x"},
		Renamed: "r",
		Skipped: "s",
	}

	v := Classify(p)
	require.Equal(t, models.KindMapping, v.Kind)

	keys := make([]string, len(v.Map))
	for i, m := range v.Map {
		keys[i] = m.Key
	}
	assert.Equal(t, []string{"Name", "Age", "Home", "Tags", "alias"}, keys)

	home := v.Map[2].Value
	require.Equal(t, models.KindMapping, home.Kind)
	assert.Equal(t, "Street", home.Map[0].Key)
	assert.Equal(t, "City", home.Map[1].Key)
}

func TestClassify_PointersAndNil(t *testing.T) {
	n := 5
	assert.Equal(t, models.Int(5), Classify(&n))

	var nilPtr *int
	assert.Equal(t, models.KindNull, Classify(nilPtr).Kind)
}

type orderedPayload struct{}

func (orderedPayload) Fields() []models.Field {
	return []models.Field{
		{Name: "z_last", Value: 1},
		{Name: "a_first", Value: 2},
	}
}

func TestClassify_RecordAdapterOrder(t *testing.T) {
	// Record implementors control their own member order; no sorting.
	v := Classify(orderedPayload{})
	require.Equal(t, models.KindMapping, v.Kind)
	assert.Equal(t, "z_last", v.Map[0].Key)
	assert.Equal(t, "a_first", v.Map[1].Key)
}

type color int

func (c color) EnumName() string {
	return [...]string{"Red", "Green", "Blue"}[c]
}

func (c color) EnumOrdinal() int64 { return int64(c) }

func TestClassify_EnumerationAdapter(t *testing.T) {
	v := Classify(color(2))
	require.Equal(t, models.KindEnum, v.Kind)
	assert.Equal(t, "Blue", v.EnumVal.Name)
	assert.Equal(t, int64(2), v.EnumVal.Ordinal)
}

func TestClassify_NamedScalarTypes(t *testing.T) {
	type level int
	assert.Equal(t, models.Int(3), Classify(level(3)))

	type label string
	assert.Equal(t, models.String("hi"), Classify(label("hi")))
}

func TestClassify_UnsupportedFallsBackToEmptyMapping(t *testing.T) {
	v := Classify(func() {})
	assert.Equal(t, models.KindMapping, v.Kind)
	assert.Empty(t, v.Map)
}

func TestClassify_Idempotent(t *testing.T) {
	inputs := []any{nil, true, 42, "s", []any{1, 2}, map[string]int{"a": 1}, person{Name: "x"}}
	for _, in := range inputs {
		first := Classify(in)
		second := Classify(in)
		assert.Equal(t, first, second)
	}
}
