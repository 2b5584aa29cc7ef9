package ormbridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// every built-in converter is registered on the shared registry and converts a plain column
func TestFieldConverter_Builtins(t *testing.T) {
	registry := Default()
	for _, builtin := range builtins() {
		description := "builtin for " + builtin.SourceType().String()
		registered, err := registry.Lookup(builtin.SourceType())
		if !assert.Nil(t, err, description) {
			continue
		}
		assert.Equal(t, builtin.DestType(), registered.DestType(), description)

		converted, err := builtin.Convert(&Field{
			Name:   "Value",
			Column: "value",
			Type:   builtin.SourceType(),
		})
		if !assert.Nil(t, err, description) {
			continue
		}
		assert.Equal(t, builtin.DestType(), converted.Type, description)
		assert.True(t, strings.HasPrefix(string(converted.Tag), `bun:"value`), description)
	}
}

func TestFieldConverter_Convert(t *testing.T) {
	var testCases = []struct {
		description string
		converter   *FieldConverter
		source      *Field
		expectTag   string
	}{
		{
			description: "shared settings copied verbatim",
			converter:   NewFieldConverter(stringType, stringType, WithColumnType(textColumn)),
			source: &Field{
				Name:    "Code",
				Column:  "code",
				Type:    stringType,
				Size:    16,
				NotNull: true,
				Unique:  true,
			},
			expectTag: `bun:"code,type:varchar(16),notnull,unique"`,
		},
		{
			description: "primary key suppresses notnull and unique",
			converter:   NewFieldConverter(int64Type, int64Type, WithColumnType(fixedColumn("bigint"))),
			source: &Field{
				Name:          "ID",
				Column:        "id",
				Type:          int64Type,
				PrimaryKey:    true,
				AutoIncrement: true,
				NotNull:       true,
			},
			expectTag: `bun:"id,type:bigint,pk,autoincrement"`,
		},
		{
			description: "declared default",
			converter:   NewFieldConverter(intType, intType, WithColumnType(fixedColumn("bigint"))),
			source: &Field{
				Name:       "Retries",
				Column:     "retries",
				Type:       intType,
				HasDefault: true,
				Default:    "3",
			},
			expectTag: `bun:"retries,type:bigint,default:3"`,
		},
		{
			description: "precision and scale",
			converter:   NewFieldConverter(float64Type, float64Type, WithColumnType(floatColumn)),
			source: &Field{
				Name:      "Total",
				Column:    "total",
				Type:      float64Type,
				Precision: 12,
				Scale:     2,
			},
			expectTag: `bun:"total,type:numeric(12,2)"`,
		},
		{
			description: "reshape appends after shared settings",
			converter: NewFieldConverter(timeType, timeType,
				WithColumnType(fixedColumn("timestamptz")), WithReshape(autoTime)),
			source: &Field{
				Name:       "CreatedAt",
				Column:     "created_at",
				Type:       timeType,
				AutoCreate: true,
			},
			expectTag: `bun:"created_at,type:timestamptz,default:current_timestamp"`,
		},
	}
	for _, testCase := range testCases {
		actual, err := testCase.converter.Convert(testCase.source)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectTag, string(actual.Tag), testCase.description)
	}
}
