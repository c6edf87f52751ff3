package adaptly

import "github.com/viant/tagly/format/text"

type (
	//Option represents an adapter construction option
	Option func(a *Adapter)

	adaptOptions struct {
		fill         bool
		defaultValue interface{}
	}

	//AdaptOption represents a per-call adapt option
	AdaptOption func(o *adaptOptions)

	mappingOptions struct {
		caseFormat text.CaseFormat
	}

	//MappingOption represents a mapping derivation option
	MappingOption func(o *mappingOptions)
)

// WithSeparator overrides the path segment delimiter.
func WithSeparator(separator string) Option {
	return func(a *Adapter) {
		if separator != "" {
			a.separator = separator
		}
	}
}

// WithDefault turns on fill mode: fields whose path hits a missing key are
// set to the supplied default instead of omitted. A nil default is valid.
func WithDefault(value interface{}) AdaptOption {
	return func(o *adaptOptions) {
		o.fill = true
		o.defaultValue = value
	}
}

func newAdaptOptions(opts []AdaptOption) *adaptOptions {
	ret := &adaptOptions{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithCaseFormat sets the case format applied to Go field names when
// deriving output field names.
func WithCaseFormat(caseFormat text.CaseFormat) MappingOption {
	return func(o *mappingOptions) {
		o.caseFormat = caseFormat
	}
}

func newMappingOptions(opts []MappingOption) *mappingOptions {
	ret := &mappingOptions{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
