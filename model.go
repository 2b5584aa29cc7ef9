package ormbridge

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/uptrace/bun"
	"github.com/viant/ormbridge/tags"
	"gorm.io/gorm/schema"
)

var baseModelType = reflect.TypeOf(bun.BaseModel{})

type (
	//Converter transforms source model declarations into destination model definitions
	Converter struct {
		registry  *Registry
		overrides Overrides
		cache     sync.Map //source model type to *Model
	}

	//Model represents a converted destination model definition
	Model struct {
		name       string
		table      string
		alias      string
		rType      reflect.Type
		sourceType reflect.Type
		fields     []*DestField
		byName     map[string]*DestField
		bindings   []binding
	}
)

// New creates a model converter backed by the shared registry unless overridden
func New(opts ...Option) *Converter {
	ret := &Converter{registry: Default()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Convert produces a destination model definition for the supplied source model.
// Fields listed in redefinitions are used verbatim; remaining fields resolve a
// converter by their exact declared type. Conversion fails fast on the first
// field with no converter and no redefinition.
func (c *Converter) Convert(model interface{}, opts ...ModelOption) (*Model, error) {
	aSchema, err := sourceSchema(model)
	if err != nil {
		return nil, err
	}
	cacheable := len(opts) == 0
	if cacheable {
		if cached, ok := c.cache.Load(aSchema.ModelType); ok {
			return cached.(*Model), nil
		}
	}
	options, err := c.newModelOptions(aSchema, opts)
	if err != nil {
		return nil, err
	}
	fields, err := c.convertFields(aSchema, options.redefinitions)
	if err != nil {
		return nil, err
	}
	ret, err := newModel(aSchema, options, fields)
	if err != nil {
		return nil, err
	}
	if cacheable {
		c.cache.Store(aSchema.ModelType, ret)
	}
	return ret, nil
}

// ConvertAll converts every supplied source model; each result matches what
// Convert would produce on that model alone
func (c *Converter) ConvertAll(models ...interface{}) ([]*Model, error) {
	ret := make([]*Model, 0, len(models))
	for _, model := range models {
		converted, err := c.Convert(model)
		if err != nil {
			return nil, err
		}
		ret = append(ret, converted)
	}
	return ret, nil
}

// Lookup returns the previously converted definition for the supplied source model
func (c *Converter) Lookup(model interface{}) *Model {
	rType := reflect.TypeOf(model)
	for rType != nil && rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType == nil {
		return nil
	}
	if cached, ok := c.cache.Load(rType); ok {
		return cached.(*Model)
	}
	return nil
}

func (c *Converter) convertFields(aSchema *schema.Schema, redefinitions Redefinitions) ([]*DestField, error) {
	var fields []*DestField
	seen := map[string]bool{}
	for _, field := range aSchema.Fields {
		if redefined, ok := redefinitions[field.Name]; ok {
			fields = append(fields, redefined)
			seen[field.Name] = true
			continue
		}
		if !field.Creatable && !field.Updatable && !field.Readable { //declared as ignored on the source side
			continue
		}
		if rel, ok := aSchema.Relationships.Relations[field.Name]; ok {
			converted, err := relationField(rel)
			if err != nil {
				return nil, fmt.Errorf("failed to convert %v.%v: %w", aSchema.Name, field.Name, err)
			}
			fields = append(fields, converted)
			seen[field.Name] = true
			continue
		}
		converter, err := c.registry.Lookup(field.FieldType)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %v.%v: %w", aSchema.Name, field.Name, err)
		}
		converted, err := converter.Convert(newField(field))
		if err != nil {
			return nil, fmt.Errorf("failed to convert %v.%v: %w", aSchema.Name, field.Name, err)
		}
		fields = append(fields, converted)
		seen[field.Name] = true
	}

	//redefinitions may introduce fields absent from the source declaration
	var extra []string
	for name := range redefinitions {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		fields = append(fields, redefinitions[name])
	}
	return fields, nil
}

// newModel assembles the destination model type. Invalid redefinitions surface
// as destination side construction panics, unmodified.
func newModel(aSchema *schema.Schema, options *modelOptions, fields []*DestField) (*Model, error) {
	tableTag := &tags.Tag{Name: DestTagName}
	tableTag.Append("table:" + options.table)
	tableTag.Append("alias:" + options.alias)

	structFields := make([]reflect.StructField, 0, 1+len(fields))
	structFields = append(structFields, reflect.StructField{
		Name:      "BaseModel",
		Type:      baseModelType,
		Anonymous: true,
		Tag:       tags.Tags{tableTag}.StructTag(),
	})
	byName := make(map[string]*DestField, len(fields))
	for _, field := range fields {
		if field.Type == nil {
			return nil, fmt.Errorf("redefined field %v.%v has no type", aSchema.Name, field.Name)
		}
		structFields = append(structFields, reflect.StructField{
			Name: field.Name,
			Type: field.Type,
			Tag:  field.Tag,
		})
		byName[field.Name] = field
	}
	ret := &Model{
		name:       aSchema.Name,
		table:      options.table,
		alias:      options.alias,
		rType:      reflect.StructOf(structFields),
		sourceType: aSchema.ModelType,
		fields:     fields,
		byName:     byName,
	}
	ret.bindings = newBindings(ret)
	return ret, nil
}

// Name returns destination model name
func (m *Model) Name() string {
	return m.name
}

// Table returns destination table name
func (m *Model) Table() string {
	return m.table
}

// Alias returns destination table alias
func (m *Model) Alias() string {
	return m.alias
}

// Type returns the destination model type
func (m *Model) Type() reflect.Type {
	return m.rType
}

// SourceType returns the source model type
func (m *Model) SourceType() reflect.Type {
	return m.sourceType
}

// Fields returns destination column definitions in declaration order
func (m *Model) Fields() []*DestField {
	return m.fields
}

// Field returns destination column definition with the supplied name
func (m *Model) Field(name string) *DestField {
	return m.byName[name]
}

// New returns a pointer to a fresh destination model instance
func (m *Model) New() interface{} {
	return reflect.New(m.rType).Interface()
}

var defaultConverter = New()

// Convert converts the supplied source model with the default converter
func Convert(model interface{}, opts ...ModelOption) (*Model, error) {
	return defaultConverter.Convert(model, opts...)
}

// ConvertAll converts every supplied source model with the default converter
func ConvertAll(models ...interface{}) ([]*Model, error) {
	return defaultConverter.ConvertAll(models...)
}

// Lookup returns a previously converted definition held by the default converter
func Lookup(model interface{}) *Model {
	return defaultConverter.Lookup(model)
}
