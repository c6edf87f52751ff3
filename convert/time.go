package convert

import (
	"fmt"

	"github.com/restkit/adaptly/epoch"
)

// TimeFromMillis converts a wire epoch-milliseconds number into a UTC time.
func TimeFromMillis(value interface{}) (interface{}, error) {
	millis, err := asFloat64(value)
	if err != nil {
		return nil, err
	}
	return epoch.FromMillis(millis), nil
}

// TimeFromSeconds converts a wire epoch-seconds number into a UTC time.
func TimeFromSeconds(value interface{}) (interface{}, error) {
	seconds, err := asFloat64(value)
	if err != nil {
		return nil, err
	}
	return epoch.FromSeconds(seconds), nil
}

// TimeFromString parses a fixed-format wire timestamp into a UTC time.
func TimeFromString(value interface{}) (interface{}, error) {
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected a timestamp string, got %T", value)
	}
	return epoch.FromString(text)
}

func asFloat64(value interface{}) (float64, error) {
	switch actual := value.(type) {
	case float64:
		return actual, nil
	case float32:
		return float64(actual), nil
	case int:
		return float64(actual), nil
	case int64:
		return float64(actual), nil
	case uint64:
		return float64(actual), nil
	}
	return 0, fmt.Errorf("expected an epoch number, got %T", value)
}
