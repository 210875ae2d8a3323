package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_Variants(t *testing.T) {
	assert.Equal(t, KindNull, ValueOf(nil).Kind())
	assert.Equal(t, KindBool, ValueOf(true).Kind())
	assert.Equal(t, KindNumber, ValueOf(42).Kind())
	assert.Equal(t, KindNumber, ValueOf(int64(7)).Kind())
	assert.Equal(t, KindNumber, ValueOf(3.5).Kind())
	assert.Equal(t, KindString, ValueOf("x").Kind())
	assert.Equal(t, KindSequence, ValueOf([]any{1, "a"}).Kind())
	assert.Equal(t, KindMapping, ValueOf(map[string]any{"k": "v"}).Kind())

	n, ok := ValueOf(int64(7)).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	// Unknown types stringify rather than fail.
	s, ok := ValueOf(struct{ X int }{1}).AsString()
	assert.True(t, ok)
	assert.NotEmpty(t, s)
}

func TestValue_JSONRoundTrip(t *testing.T) {
	record := Record{
		"c.name":  String("Arju Thapa"),
		"age":     Number(27),
		"active":  Bool(true),
		"missing": Null(),
		"skills":  Sequence(String("Go"), String("Python")),
		"education": Mapping(map[string]Value{
			"university": String("Tribhuvan"),
			"degree":     String("BSc"),
		}),
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
}

func TestValue_DefensiveCopies(t *testing.T) {
	seq := Sequence(String("a"))
	got, ok := seq.AsSequence()
	require.True(t, ok)
	got[0] = String("mutated")

	again, _ := seq.AsSequence()
	s, _ := again[0].AsString()
	assert.Equal(t, "a", s)
}

func TestRecord_KeysSorted(t *testing.T) {
	r := Record{"b": Null(), "a": Null(), "c": Null()}
	assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
}
