package ormbridge

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/viant/ormbridge/tags"
	"gopkg.in/yaml.v3"
)

type (
	//Redefinitions overrides conversion for listed field names; listed
	//destination fields are used verbatim
	Redefinitions map[string]*DestField

	//Overrides holds user authored redefinition specs keyed by model name,
	//then field name
	Overrides map[string]map[string]string
)

// LoadOverrides loads redefinition specs from a YAML mapping file
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}
	return ParseOverrides(data)
}

// ParseOverrides parses YAML redefinition specs
func ParseOverrides(data []byte) (Overrides, error) {
	var ret Overrides
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("failed to parse overrides: %w", err)
	}
	return ret, nil
}

// Redefinitions builds redefinitions for the supplied model name
func (o Overrides) Redefinitions(model string) (Redefinitions, error) {
	specs := o[model]
	if len(specs) == 0 {
		return nil, nil
	}
	ret := make(Redefinitions, len(specs))
	for name, spec := range specs {
		field, err := ParseFieldSpec(name, spec)
		if err != nil {
			return nil, fmt.Errorf("invalid override for %v.%v: %w", model, name, err)
		}
		ret[name] = field
	}
	return ret, nil
}

var specTypes = map[string]reflect.Type{
	"string":  stringType,
	"*string": stringPtrType,
	"int":     intType,
	"int16":   int16Type,
	"int32":   int32Type,
	"int64":   int64Type,
	"float32": float32Type,
	"float64": float64Type,
	"bool":    boolType,
	"time":    timeType,
	"*time":   timePtrType,
	"bytes":   bytesType,
	"json":    rawMessageType,
}

// ParseFieldSpec parses a destination field spec,
// i.e. "column=title, type=varchar(128), notnull, as=string"
func ParseFieldSpec(name string, spec string) (*DestField, error) {
	ret := &DestField{Name: name, Type: stringType}
	column := ""
	columnType := ""
	var flags []string
	defaultValue := ""

	err := tags.Values(spec).MatchPairs(func(key, value string) error {
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "as":
			rType, ok := specTypes[value]
			if !ok {
				return fmt.Errorf("unknown field spec type %q", value)
			}
			ret.Type = rType
		case "column":
			column = value
		case "type":
			columnType = value
		case "default":
			defaultValue = value
		case "pk", "autoincrement", "notnull", "unique", "nullzero":
			flags = append(flags, key)
		default:
			return fmt.Errorf("unknown field spec option %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if column == "" {
		column = columnName(name)
	}
	tag := &tags.Tag{Name: DestTagName}
	tag.Append(column)
	if columnType != "" {
		tag.Append("type:" + columnType)
	}
	for _, flag := range flags {
		tag.Append(flag)
	}
	if defaultValue != "" {
		tag.Append("default:" + defaultValue)
	}
	ret.Tag = tags.Tags{tag}.StructTag()
	return ret, nil
}
