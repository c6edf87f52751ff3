// Package document implements key traversal over dynamic documents, i.e.
// arbitrarily nested objects, lists and scalars as produced by JSON
// deserialization. Traversal distinguishes a key absent from an object,
// a recoverable condition, from descending into a value that is not an
// object at all, a schema mismatch surfaced as TypeError.
package document

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrKeyNotFound indicates a key absent from an object at some traversal step.
var ErrKeyNotFound = errors.New("key not found")

// TypeError indicates traversal into a value that is not an object.
type TypeError struct {
	Key  string
	Node interface{}
}

// Error implements error
func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot traverse %q: %T is not an object", e.Key, e.Node)
}

// Resolve traverses node successively by each key and returns the final
// value. A missing key yields an error wrapping ErrKeyNotFound; a cursor
// that is not a string-keyed object yields a *TypeError.
func Resolve(node interface{}, keys ...string) (interface{}, error) {
	for _, key := range keys {
		value, err := lookup(node, key)
		if err != nil {
			return nil, err
		}
		node = value
	}
	return node, nil
}

func lookup(node interface{}, key string) (interface{}, error) {
	switch actual := node.(type) {
	case map[string]interface{}:
		value, ok := actual[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		return value, nil
	case map[string]string:
		value, ok := actual[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		return value, nil
	}
	return lookupReflect(node, key)
}

// lookupReflect handles any other string-keyed map kind.
func lookupReflect(node interface{}, key string) (interface{}, error) {
	value := reflect.ValueOf(node)
	if value.Kind() != reflect.Map || value.Type().Key().Kind() != reflect.String {
		return nil, &TypeError{Key: key, Node: node}
	}
	item := value.MapIndex(reflect.ValueOf(key))
	if !item.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return item.Interface(), nil
}
