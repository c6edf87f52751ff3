package adaptly

import "fmt"

type (
	//Field binds an output field name to a dotted path in the source document
	Field struct {
		Name string
		Path string
	}

	//Mapping represents an ordered set of output fields; adapted records
	//preserve its order. A Mapping is defined once and shared by the
	//adapters built from it.
	Mapping []Field
)

// Validate checks the mapping for empty and duplicate fields.
func (m Mapping) Validate() error {
	seen := map[string]bool{}
	for i, field := range m {
		if field.Name == "" {
			return fmt.Errorf("field name was empty at %v", i)
		}
		if field.Path == "" {
			return fmt.Errorf("field %q path was empty", field.Name)
		}
		if seen[field.Name] {
			return fmt.Errorf("duplicate field %q", field.Name)
		}
		seen[field.Name] = true
	}
	return nil
}
