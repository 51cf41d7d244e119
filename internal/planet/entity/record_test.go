package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "null", value: Null(), want: `null`},
		{name: "zero value", value: Value{}, want: `null`},
		{name: "string", value: String("Kepler-442 b"), want: `"Kepler-442 b"`},
		{name: "integer", value: Integer(-42), want: `-42`},
		{name: "float", value: Float(0.39), want: `0.39`},
		{name: "whole float", value: Float(5), want: `5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestValueAny(t *testing.T) {
	assert.Nil(t, Null().Any())
	assert.Equal(t, "x", String("x").Any())
	assert.Equal(t, int64(7), Integer(7).Any())
	assert.Equal(t, 1.5, Float(1.5).Any())
	assert.True(t, Null().IsNull())
	assert.Equal(t, "float", Float(1).Kind().String())
}

func TestRecordMarshalJSONKeepsColumnOrder(t *testing.T) {
	rec := Record{
		{Name: "name", Value: String("Mercury")},
		{Name: "distance_au", Value: Float(0.39)},
		{Name: "moons", Value: Integer(0)},
		{Name: "Note", Value: Null()},
	}

	got, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Mercury","distance_au":0.39,"moons":0,"Note":null}`, string(got))
	assert.Equal(t, []string{"name", "distance_au", "moons", "Note"}, rec.Names())

	v, ok := rec.Get("distance_au")
	require.True(t, ok)
	assert.Equal(t, 0.39, v.Any())

	_, ok = rec.Get("missing")
	assert.False(t, ok)
}

func TestDatasetRowsNeverNil(t *testing.T) {
	got, err := json.Marshal(Dataset{Columns: []string{"a"}}.Rows())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
