package adaptly

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/tagly/format/text"
)

const (
	//TagName defines the mapping tag name
	TagName = "adapt"
)

// Tag carries per-field mapping settings, i.e. adapt:"path=broadcast.id" or
// adapt:"name=syncUrl,path=broadcast.sync.url". A bare value is a path
// shorthand; "-" excludes the field.
type Tag struct {
	Name   string
	Path   string
	Ignore bool
}

func (t *Tag) update(key string, value string) error {
	switch strings.ToLower(key) {
	case "":
		t.Path = value
	case "name":
		t.Name = value
	case "path":
		t.Path = value
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

// ParseTag parses the adapt tag of a struct field.
func ParseTag(tag reflect.StructTag) (*Tag, error) {
	ret := &Tag{}
	encoded := tag.Get(TagName)
	if encoded == "" {
		return ret, nil
	}
	if encoded == "-" {
		ret.Ignore = true
		return ret, nil
	}
	cursor := parsly.NewCursor("", []byte(encoded), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" && value == "" {
			break
		}
		if err := ret.update(key, value); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		match = cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}

// MappingFor derives a Mapping from the adapt tags of a struct type, in
// struct field order. Output names default to the Go field name, formatted
// with the configured case format; paths default to the output name.
func MappingFor(target reflect.Type, opts ...MappingOption) (Mapping, error) {
	options := newMappingOptions(opts)
	structType := ensureStruct(target)
	if structType == nil {
		return nil, fmt.Errorf("expected a struct, got %s", target.String())
	}
	var result Mapping
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" { //unexported
			continue
		}
		tag, err := ParseTag(field.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid %v tag on %v: %w", TagName, field.Name, err)
		}
		if tag.Ignore {
			continue
		}
		name := tag.Name
		if name == "" {
			name = formatName(field.Name, options.caseFormat)
		}
		path := tag.Path
		if path == "" {
			path = name
		}
		result = append(result, Field{Name: name, Path: path})
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func formatName(name string, caseFormat text.CaseFormat) string {
	if !caseFormat.IsDefined() {
		return name
	}
	return text.DetectCaseFormat(name).Format(name, caseFormat)
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
