package ormbridge

import (
	"reflect"

	"github.com/viant/ormbridge/tags"
)

// DestTagName is the destination framework struct tag key
const DestTagName = "bun"

type (
	//Reshape adjusts the destination tag after shared settings were copied
	Reshape func(source *Field, dest *tags.Tag) error

	//ColumnType derives the destination column type for a source field
	ColumnType func(source *Field) string

	//FieldConverter converts a source field declaration into a destination
	//column definition; each converter binds exactly one source type to one
	//destination type
	FieldConverter struct {
		sourceType reflect.Type
		destType   reflect.Type
		columnType ColumnType
		reshape    Reshape
		nullZero   bool
	}

	//ConverterOption customizes a field converter
	ConverterOption func(c *FieldConverter)
)

// WithColumnType sets the destination column type derivation
func WithColumnType(fn ColumnType) ConverterOption {
	return func(c *FieldConverter) {
		c.columnType = fn
	}
}

// WithReshape sets the reshape step run after shared settings were copied
func WithReshape(fn Reshape) ConverterOption {
	return func(c *FieldConverter) {
		c.reshape = fn
	}
}

// WithNullZero marks destination columns as nullzero
func WithNullZero() ConverterOption {
	return func(c *FieldConverter) {
		c.nullZero = true
	}
}

// NewFieldConverter creates a field converter for the supplied source and destination types
func NewFieldConverter(sourceType, destType reflect.Type, opts ...ConverterOption) *FieldConverter {
	ret := &FieldConverter{sourceType: sourceType, destType: destType}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// SourceType returns bound source field type
func (c *FieldConverter) SourceType() reflect.Type {
	return c.sourceType
}

// DestType returns bound destination field type
func (c *FieldConverter) DestType() reflect.Type {
	return c.destType
}

// Convert builds a destination column definition for the supplied source field.
// Shared settings are copied verbatim; the reshape step may rename, drop or add
// destination tag values.
func (c *FieldConverter) Convert(source *Field) (*DestField, error) {
	tag := &tags.Tag{Name: DestTagName}
	tag.Append(source.Column)
	if c.columnType != nil {
		if columnType := c.columnType(source); columnType != "" {
			tag.Append("type:" + columnType)
		}
	}
	if source.PrimaryKey {
		tag.Append("pk")
	}
	if source.AutoIncrement {
		tag.Append("autoincrement")
	}
	if source.NotNull && !source.PrimaryKey {
		tag.Append("notnull")
	}
	if c.nullZero {
		tag.Append("nullzero")
	}
	if source.Unique && !source.PrimaryKey {
		tag.Append("unique")
	}
	if source.HasDefault && source.Default != "" {
		tag.Append("default:" + source.Default)
	}
	if c.reshape != nil {
		if err := c.reshape(source, tag); err != nil {
			return nil, err
		}
	}
	return &DestField{
		Name: source.Name,
		Type: c.destType,
		Tag:  tags.Tags{tag}.StructTag(),
	}, nil
}
