package entity

import (
	"bytes"
	"encoding/json"
)

type Field struct {
	Name  string
	Value Value
}

// Record is one data row. Fields keep the column order of the source file,
// and that order is preserved when the record is encoded to JSON.
type Record []Field

// Get returns the value stored under the given column name.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

func (r Record) Names() []string {
	names := make([]string, 0, len(r))
	for _, f := range r {
		names = append(names, f.Name)
	}
	return names
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

type Dataset struct {
	Columns []string
	Records []Record
}

// Rows returns the records, never nil, so an empty dataset encodes as [].
func (d Dataset) Rows() []Record {
	if d.Records == nil {
		return []Record{}
	}
	return d.Records
}
