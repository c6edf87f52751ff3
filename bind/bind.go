// Package bind assigns adapted records onto Go structs, the terminal step of
// the response-shaping pipeline: adapt a document into a flat record, run
// field converters, then bind the record onto a typed model.
package bind

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/restkit/adaptly"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	//Binder assigns record values onto structs of a fixed type
	Binder struct {
		rType    reflect.Type
		bindings map[string]*binding
	}

	binding struct {
		field     *xunsafe.Field
		inputType reflect.Type
		setter    Setter
	}
)

// New creates a binder for the supplied target struct type. Each field is
// indexed under its Go name, its json tag name and common case-format
// variants, so record names do not need to match the Go spelling.
func New(target interface{}) (*Binder, error) {
	rType := reflect.TypeOf(target)
	structType := ensureStruct(rType)
	if structType == nil {
		return nil, fmt.Errorf("expected a struct target, got %s", rType.String())
	}
	xStruct := xunsafe.NewStruct(structType)
	result := &Binder{
		rType:    structType,
		bindings: map[string]*binding{},
	}
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		aBinding := &binding{field: field}
		for _, name := range fieldNames(field) {
			if _, ok := result.bindings[name]; ok {
				continue
			}
			result.bindings[name] = aBinding
		}
	}
	return result, nil
}

// Type returns the binder struct type
func (b *Binder) Type() reflect.Type {
	return b.rType
}

// Bind assigns record values onto the target, which has to be a pointer to
// the binder struct type. Record fields without a matching struct field are
// skipped.
func (b *Binder) Bind(record *adaptly.Record, target interface{}) error {
	targetType := reflect.TypeOf(target)
	if targetType == nil || targetType.Kind() != reflect.Ptr || targetType.Elem() != b.rType {
		return fmt.Errorf("expected *%s, got %T", b.rType.String(), target)
	}
	holder := xunsafe.AsPointer(target)
	var err error
	record.Each(func(name string, value interface{}) bool {
		aBinding, ok := b.bindings[name]
		if !ok {
			return true
		}
		if bindErr := aBinding.set(holder, value); bindErr != nil {
			err = fmt.Errorf("failed to bind %q: %w", name, bindErr)
			return false
		}
		return true
	})
	return err
}

func (g *binding) set(holder unsafe.Pointer, value interface{}) error {
	if value == nil {
		return nil //keep the zero value
	}
	srcType := reflect.TypeOf(value)
	if g.setter == nil || g.inputType != srcType {
		g.setter = LookupSetter(srcType, g.field.Type)
		g.inputType = srcType
	}
	return g.setter(value, g.field, holder)
}

func fieldNames(field *xunsafe.Field) []string {
	names := []string{field.Name}
	if encoded := field.Tag.Get("json"); encoded != "" {
		name := strings.Split(encoded, ",")[0]
		if name != "" && name != "-" {
			names = append(names, name)
		}
	}
	caseFormat := text.DetectCaseFormat(field.Name)
	for _, variant := range []text.CaseFormat{text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore} {
		names = append(names, caseFormat.Format(field.Name, variant))
	}
	return names
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	case reflect.Struct:
		return t
	}
	return nil
}
