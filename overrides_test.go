package ormbridge

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldSpec(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		spec        string
		expectType  reflect.Type
		expectTag   string
		expectErr   bool
	}{
		{
			description: "typed column",
			name:        "Title",
			spec:        "column=book_title,type=varchar(128),notnull,as=string",
			expectType:  stringType,
			expectTag:   `bun:"book_title,type:varchar(128),notnull"`,
		},
		{
			description: "column name derived from field name",
			name:        "PublishedAt",
			spec:        "type=timestamptz,as=time",
			expectType:  timeType,
			expectTag:   `bun:"published_at,type:timestamptz"`,
		},
		{
			description: "default and flags",
			name:        "Views",
			spec:        "as=int64,type=bigint,notnull,default=0",
			expectType:  int64Type,
			expectTag:   `bun:"views,type:bigint,notnull,default:0"`,
		},
		{
			description: "unknown option",
			name:        "Title",
			spec:        "colour=red",
			expectErr:   true,
		},
		{
			description: "unknown type",
			name:        "Title",
			spec:        "as=decimal128",
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		actual, err := ParseFieldSpec(testCase.name, testCase.spec)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectType, actual.Type, testCase.description)
		assert.Equal(t, testCase.expectTag, string(actual.Tag), testCase.description)
	}
}

func TestOverrides_Convert(t *testing.T) {
	overrides, err := ParseOverrides([]byte(`
Label:
  Name: "column=tag_name,type=varchar(48),notnull,as=string"
`))
	if !assert.Nil(t, err) {
		return
	}
	converter := New(WithOverrides(overrides))
	model, err := converter.Convert(&Label{})
	if !assert.Nil(t, err) {
		return
	}
	field := model.Field("Name")
	if !assert.NotNil(t, field) {
		return
	}
	assert.Equal(t, `bun:"tag_name,type:varchar(48),notnull"`, string(field.Tag))

	//models without overrides are unaffected
	book, err := converter.Convert(&Book{})
	assert.Nil(t, err)
	assert.Equal(t, `bun:"title,type:varchar(255),notnull"`, string(book.Field("Title").Tag))
}
