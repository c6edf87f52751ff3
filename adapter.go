// Package adaptly flattens nested API response documents into flat records
// driven by declarative field mappings, so that per-endpoint extraction code
// reduces to a Mapping literal or a tagged struct.
package adaptly

import (
	"errors"
	"strings"

	"github.com/restkit/adaptly/document"
)

// DefaultSeparator is the path segment delimiter used unless overridden.
const DefaultSeparator = "."

// Adapter extracts a flat record from documents of an expected shape.
// An Adapter is immutable after construction and safe for concurrent use.
type Adapter struct {
	mapping   Mapping
	separator string
	paths     [][]string
}

// New creates an adapter for the supplied mapping.
func New(mapping Mapping, opts ...Option) (*Adapter, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	result := &Adapter{mapping: mapping, separator: DefaultSeparator}
	for _, opt := range opts {
		opt(result)
	}
	result.paths = make([][]string, len(mapping))
	for i, field := range mapping {
		result.paths[i] = strings.Split(field.Path, result.separator)
	}
	return result, nil
}

// Mapping returns the adapter mapping
func (a *Adapter) Mapping() Mapping {
	return a.mapping
}

// Adapt extracts mapped fields from the document into a record, preserving
// mapping order. A field whose path hits a missing key is omitted, or set
// to the configured default when fill mode is on. Any other traversal
// failure means the document shape does not match the mapping and is
// returned to the caller.
func (a *Adapter) Adapt(doc interface{}, opts ...AdaptOption) (*Record, error) {
	options := newAdaptOptions(opts)
	result := NewRecord()
	for i, field := range a.mapping {
		value, err := document.Resolve(doc, a.paths[i]...)
		if err != nil {
			if errors.Is(err, document.ErrKeyNotFound) {
				if options.fill {
					result.Put(field.Name, options.defaultValue)
				}
				continue
			}
			return nil, err
		}
		result.Put(field.Name, value)
	}
	return result, nil
}
