package convert

import "fmt"

// Conversions maps field names to the converter applied to that field,
// declaring once per response shape which fields need post-processing.
type Conversions map[string]Func

// ConvertOne applies the registered converters to a single record in place.
// Fields absent from the record are skipped.
func (c Conversions) ConvertOne(record map[string]interface{}) (map[string]interface{}, error) {
	for key, fn := range c {
		value, ok := record[key]
		if !ok {
			continue
		}
		converted, err := fn(value)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %q: %w", key, err)
		}
		record[key] = converted
	}
	return record, nil
}

// Convert applies the registered converters to a single record or to each
// record of a list, in place.
func (c Conversions) Convert(data interface{}) (interface{}, error) {
	switch actual := data.(type) {
	case map[string]interface{}:
		return c.ConvertOne(actual)
	case []interface{}:
		for i, item := range actual {
			record, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("expected a record at %v, got %T", i, item)
			}
			converted, err := c.ConvertOne(record)
			if err != nil {
				return nil, err
			}
			actual[i] = converted
		}
		return actual, nil
	}
	return nil, fmt.Errorf("expected a record or a record list, got %T", data)
}

// ConvertValues applies the registered converters to every value of an
// envelope map, i.e. a response keyed by an outer dimension.
func (c Conversions) ConvertValues(data map[string]interface{}) (map[string]interface{}, error) {
	for key, value := range data {
		converted, err := c.Convert(value)
		if err != nil {
			return nil, fmt.Errorf("failed to convert values of %q: %w", key, err)
		}
		data[key] = converted
	}
	return data, nil
}
