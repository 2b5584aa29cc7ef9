package ormbridge

import (
	"gorm.io/gorm/schema"
)

type (
	//Option customizes a model converter
	Option func(c *Converter)

	//ModelOption customizes a single conversion
	ModelOption func(o *modelOptions)

	modelOptions struct {
		table         string
		alias         string
		redefinitions Redefinitions
	}
)

// WithRegistry sets the converter registry
func WithRegistry(registry *Registry) Option {
	return func(c *Converter) {
		c.registry = registry
	}
}

// WithOverrides sets redefinition specs applied to every matching model
func WithOverrides(overrides Overrides) Option {
	return func(c *Converter) {
		c.overrides = overrides
	}
}

// WithTable overrides the destination table name
func WithTable(table string) ModelOption {
	return func(o *modelOptions) {
		o.table = table
	}
}

// WithAlias overrides the destination table alias
func WithAlias(alias string) ModelOption {
	return func(o *modelOptions) {
		o.alias = alias
	}
}

// WithRedefinitions sets destination fields used verbatim instead of conversion
func WithRedefinitions(redefinitions Redefinitions) ModelOption {
	return func(o *modelOptions) {
		if o.redefinitions == nil {
			o.redefinitions = Redefinitions{}
		}
		for name, field := range redefinitions {
			o.redefinitions[name] = field
		}
	}
}

// WithRedefinition sets a destination field used verbatim instead of conversion
func WithRedefinition(name string, field *DestField) ModelOption {
	return func(o *modelOptions) {
		if o.redefinitions == nil {
			o.redefinitions = Redefinitions{}
		}
		o.redefinitions[name] = field
	}
}

func (c *Converter) newModelOptions(aSchema *schema.Schema, opts []ModelOption) (*modelOptions, error) {
	ret := &modelOptions{table: aSchema.Table}
	redefined, err := c.overrides.Redefinitions(aSchema.Name)
	if err != nil {
		return nil, err
	}
	if len(redefined) > 0 {
		ret.redefinitions = redefined
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.alias == "" {
		ret.alias = ret.table
	}
	return ret, nil
}
