package ormbridge

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"
)

var (
	schemaCache = &sync.Map{}
	sourceNamer = schema.NamingStrategy{}
)

// sourceSchema parses the source model declaration
func sourceSchema(model interface{}) (*schema.Schema, error) {
	if model == nil {
		return nil, fmt.Errorf("source model was nil")
	}
	aSchema, err := schema.Parse(model, schemaCache, sourceNamer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source model %T: %w", model, err)
	}
	return aSchema, nil
}

// newField captures a source field declaration as an immutable descriptor
func newField(field *schema.Field) *Field {
	var settings map[string]string
	if len(field.TagSettings) > 0 {
		settings = make(map[string]string, len(field.TagSettings))
		for key, value := range field.TagSettings {
			settings[key] = value
		}
	}
	column := field.DBName
	if column == "" {
		column = columnName(field.Name)
	}
	return &Field{
		Name:          field.Name,
		Column:        column,
		Type:          field.FieldType,
		PrimaryKey:    field.PrimaryKey,
		AutoIncrement: field.AutoIncrement,
		NotNull:       field.NotNull,
		Unique:        field.Unique,
		HasDefault:    field.HasDefaultValue,
		Default:       field.DefaultValue,
		Size:          field.Size,
		Precision:     field.Precision,
		Scale:         field.Scale,
		Comment:       field.Comment,
		AutoCreate:    field.AutoCreateTime > 0,
		AutoUpdate:    field.AutoUpdateTime > 0,
		Settings:      settings,
	}
}
