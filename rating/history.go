// Package rating models rating history points as returned by the API,
// where each point arrives as a positional [year, month, day, rating] list.
package rating

import (
	"fmt"
	"time"
)

// HistoryEntry is a single rating history point.
type HistoryEntry struct {
	Year   int
	Month  int
	Day    int
	Rating int
}

// NewHistoryEntry builds an entry from a positional 4-element sequence.
func NewHistoryEntry(values []interface{}) (HistoryEntry, error) {
	if len(values) != 4 {
		return HistoryEntry{}, fmt.Errorf("expected 4 elements, got %v", len(values))
	}
	var numbers [4]int
	for i, value := range values {
		number, err := asInt(value)
		if err != nil {
			return HistoryEntry{}, fmt.Errorf("invalid element %v: %w", i, err)
		}
		numbers[i] = number
	}
	return HistoryEntry{
		Year:   numbers[0],
		Month:  numbers[1],
		Day:    numbers[2],
		Rating: numbers[3],
	}, nil
}

// Date returns the entry day as a UTC instant.
func (e HistoryEntry) Date() time.Time {
	return time.Date(e.Year, time.Month(e.Month), e.Day, 0, 0, 0, 0, time.UTC)
}

// History is a converter form of NewHistoryEntry, composable with
// convert.Listing to turn a points list into entries.
func History(value interface{}) (interface{}, error) {
	values, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a history point, got %T", value)
	}
	return NewHistoryEntry(values)
}

func asInt(value interface{}) (int, error) {
	switch actual := value.(type) {
	case int:
		return actual, nil
	case int64:
		return int(actual), nil
	case float64:
		return int(actual), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", value)
}
