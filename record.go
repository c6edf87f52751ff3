package adaptly

import (
	"bytes"
	"encoding/json"
)

type (
	//Record represents a flat, insertion-ordered view of an adapted document
	Record struct {
		index map[string]int
		items []recordItem
	}

	recordItem struct {
		name  string
		value interface{}
	}
)

// NewRecord creates an empty record
func NewRecord() *Record {
	return &Record{index: map[string]int{}}
}

// Put sets the value for a field, appending the field on first use.
func (r *Record) Put(name string, value interface{}) {
	if index, ok := r.index[name]; ok {
		r.items[index].value = value
		return
	}
	r.index[name] = len(r.items)
	r.items = append(r.items, recordItem{name: name, value: value})
}

// Get returns the value for a field
func (r *Record) Get(name string) (interface{}, bool) {
	index, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.items[index].value, true
}

// Has returns true if the record carries the field
func (r *Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of fields
func (r *Record) Len() int {
	return len(r.items)
}

// Names returns field names in insertion order
func (r *Record) Names() []string {
	result := make([]string, 0, len(r.items))
	for _, item := range r.items {
		result = append(result, item.name)
	}
	return result
}

// Each calls cb for every field in insertion order until cb returns false.
func (r *Record) Each(cb func(name string, value interface{}) bool) {
	for _, item := range r.items {
		if !cb(item.name, item.value) {
			return
		}
	}
}

// Map returns an unordered copy of the record
func (r *Record) Map() map[string]interface{} {
	result := make(map[string]interface{}, len(r.items))
	for _, item := range r.items {
		result[item.name] = item.value
	}
	return result
}

// Convert replaces the value of each of the supplied keys with fn applied to
// it, in place. Keys absent from the record are skipped.
func (r *Record) Convert(fn func(value interface{}) (interface{}, error), keys ...string) error {
	for _, key := range keys {
		index, ok := r.index[key]
		if !ok {
			continue
		}
		converted, err := fn(r.items[index].value)
		if err != nil {
			return err
		}
		r.items[index].value = converted
	}
	return nil
}

// MarshalJSON encodes the record as an object preserving field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, item := range r.items {
		if i > 0 {
			buffer.WriteByte(',')
		}
		name, err := json.Marshal(item.name)
		if err != nil {
			return nil, err
		}
		buffer.Write(name)
		buffer.WriteByte(':')
		value, err := json.Marshal(item.value)
		if err != nil {
			return nil, err
		}
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}
