package convert

import (
	"fmt"
	"reflect"
	"strconv"
)

// Func transforms a single value.
type Func func(value interface{}) (interface{}, error)

// Noop returns the value unchanged, a placeholder converter.
func Noop(value interface{}) (interface{}, error) {
	return value, nil
}

// FieldConverter rewrites selected fields of a record in place.
type FieldConverter struct {
	fn   Func
	keys []string
}

// NewFieldConverter returns a converter that replaces record[key] with
// fn(record[key]) for each of the supplied keys.
func NewFieldConverter(fn Func, keys ...string) *FieldConverter {
	return &FieldConverter{fn: fn, keys: keys}
}

// Convert mutates and returns the supplied record. Keys absent from the
// record are skipped, it is normal for fields to not always be present.
func (c *FieldConverter) Convert(record map[string]interface{}) (map[string]interface{}, error) {
	for _, key := range c.keys {
		value, ok := record[key]
		if !ok {
			continue
		}
		converted, err := c.fn(value)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %q: %w", key, err)
		}
		record[key] = converted
	}
	return record, nil
}

// Listing lifts fn over every element of a list. The result is a newly
// allocated slice with the same length and order; the input is not mutated.
func Listing(fn Func) Func {
	return func(value interface{}) (interface{}, error) {
		items, err := elementsOf(value)
		if err != nil {
			return nil, err
		}
		result := make([]interface{}, len(items))
		for i, item := range items {
			converted, err := fn(item)
			if err != nil {
				return nil, fmt.Errorf("failed to convert item %v: %w", i, err)
			}
			result[i] = converted
		}
		return result, nil
	}
}

func elementsOf(value interface{}) ([]interface{}, error) {
	if items, ok := value.([]interface{}); ok {
		return items, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected a sequence, got %T", value)
	}
	items := make([]interface{}, rValue.Len())
	for i := range items {
		items[i] = rValue.Index(i).Interface()
	}
	return items, nil
}

// Int coerces a wire number or numeric string into an int.
func Int(value interface{}) (interface{}, error) {
	switch actual := value.(type) {
	case int:
		return actual, nil
	case int64:
		return int(actual), nil
	case float64:
		return int(actual), nil
	case float32:
		return int(actual), nil
	case string:
		parsed, err := strconv.Atoi(actual)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %q into int: %w", actual, err)
		}
		return parsed, nil
	}
	return nil, fmt.Errorf("cannot convert %T into int", value)
}

// String renders a scalar as its string form.
func String(value interface{}) (interface{}, error) {
	switch actual := value.(type) {
	case string:
		return actual, nil
	case bool:
		return strconv.FormatBool(actual), nil
	case int:
		return strconv.Itoa(actual), nil
	case int64:
		return strconv.FormatInt(actual, 10), nil
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32), nil
	}
	return fmt.Sprintf("%v", value), nil
}
