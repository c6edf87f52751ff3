package adaptly

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
	"reflect"
	"testing"
)

func TestMappingFor(t *testing.T) {
	type Broadcast struct {
		ID          string `adapt:"path=broadcast.id,name=broadcast_id"`
		Slug        string `adapt:"broadcast.slug"`
		Name        string `adapt:"path=broadcast.name"`
		Description string `adapt:"path=broadcast.description"`
		SyncURL     string `adapt:"name=syncUrl,path=broadcast.sync.url"`
		Internal    string `adapt:"-"`
		hidden      string
	}

	var testCases = []struct {
		description string
		target      reflect.Type
		options     []MappingOption
		expect      Mapping
		expectError bool
	}{
		{
			description: "tagged struct",
			target:      reflect.TypeOf(Broadcast{}),
			expect: Mapping{
				{Name: "broadcast_id", Path: "broadcast.id"},
				{Name: "Slug", Path: "broadcast.slug"},
				{Name: "Name", Path: "broadcast.name"},
				{Name: "Description", Path: "broadcast.description"},
				{Name: "syncUrl", Path: "broadcast.sync.url"},
			},
		},
		{
			description: "pointer target with case format",
			target:      reflect.TypeOf(&Broadcast{}),
			options:     []MappingOption{WithCaseFormat(text.CaseFormatLowerCamel)},
			expect: Mapping{
				{Name: "broadcast_id", Path: "broadcast.id"},
				{Name: "slug", Path: "broadcast.slug"},
				{Name: "name", Path: "broadcast.name"},
				{Name: "description", Path: "broadcast.description"},
				{Name: "syncUrl", Path: "broadcast.sync.url"},
			},
		},
		{
			description: "untagged fields fall back to name as path",
			target: reflect.TypeOf(struct {
				Baz string
			}{}),
			options: []MappingOption{WithCaseFormat(text.CaseFormatLowerCamel)},
			expect:  Mapping{{Name: "baz", Path: "baz"}},
		},
		{
			description: "non struct target",
			target:      reflect.TypeOf(map[string]interface{}{}),
			expectError: true,
		},
		{
			description: "unknown tag key",
			target: reflect.TypeOf(struct {
				Baz string `adapt:"route=x"`
			}{}),
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		actual, err := MappingFor(testCase.target, testCase.options...)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestMappingForAdapt(t *testing.T) {
	type Tourney struct {
		Name    string `adapt:"path=broadcast.name"`
		SyncURL string `adapt:"name=syncUrl,path=broadcast.sync.url"`
	}
	mapping, err := MappingFor(reflect.TypeOf(Tourney{}))
	require.Nil(t, err)
	adapter, err := New(mapping)
	require.Nil(t, err)

	actual, err := adapter.Adapt(map[string]interface{}{
		"broadcast": map[string]interface{}{
			"name": "Test Tourney",
			"sync": map[string]interface{}{"url": nil},
		},
	})
	require.Nil(t, err)
	assert.Equal(t, map[string]interface{}{
		"Name":    "Test Tourney",
		"syncUrl": nil,
	}, actual.Map())
}

func TestParseTag(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		expect      Tag
	}{
		{
			description: "empty",
			tag:         ``,
			expect:      Tag{},
		},
		{
			description: "ignored",
			tag:         `adapt:"-"`,
			expect:      Tag{Ignore: true},
		},
		{
			description: "path shorthand",
			tag:         `adapt:"foo.bar"`,
			expect:      Tag{Path: "foo.bar"},
		},
		{
			description: "name and path",
			tag:         `adapt:"name=foo_bar,path=foo.bar"`,
			expect:      Tag{Name: "foo_bar", Path: "foo.bar"},
		},
		{
			description: "block enclosed pair",
			tag:         `adapt:"{path=foo.bar},name=a"`,
			expect:      Tag{Name: "a", Path: "foo.bar"},
		},
	}

	for _, testCase := range testCases {
		actual, err := ParseTag(testCase.tag)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, *actual, testCase.description)
	}
}
