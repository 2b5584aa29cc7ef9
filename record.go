package ormbridge

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

// binding pairs a source field accessor with its destination counterpart
type binding struct {
	src     *xunsafe.Field
	dest    *xunsafe.Field
	convert bool
}

func newBindings(model *Model) []binding {
	srcStruct := xunsafe.NewStruct(model.sourceType)
	destStruct := xunsafe.NewStruct(model.rType)

	srcByName := make(map[string]*xunsafe.Field, len(srcStruct.Fields))
	for i := range srcStruct.Fields {
		srcByName[srcStruct.Fields[i].Name] = &srcStruct.Fields[i]
	}

	var ret []binding
	for i := range destStruct.Fields {
		destField := &destStruct.Fields[i]
		srcField, ok := srcByName[destField.Name]
		if !ok { //embedded base model or redefinition with no source counterpart
			continue
		}
		if srcField.Type == destField.Type {
			ret = append(ret, binding{src: srcField, dest: destField})
			continue
		}
		if srcField.Type.ConvertibleTo(destField.Type) {
			ret = append(ret, binding{src: srcField, dest: destField, convert: true})
		}
		//incompatible shapes are skipped
	}
	return ret
}

// NewRecord creates a destination instance populated from the supplied source
// model instance. Relation fields keep their declared shape and are copied as
// is; redefined fields with incompatible shapes stay zero valued.
func (m *Model) NewRecord(source interface{}) (interface{}, error) {
	rType := reflect.TypeOf(source)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem() != m.sourceType {
		return nil, fmt.Errorf("invalid source record: expected %s, got %T", reflect.PtrTo(m.sourceType), source)
	}
	dest := reflect.New(m.rType).Interface()
	destPtr := xunsafe.AsPointer(dest)
	srcPtr := xunsafe.AsPointer(source)

	for _, b := range m.bindings {
		value := b.src.Value(srcPtr)
		if value == nil {
			continue
		}
		if b.convert {
			value = reflect.ValueOf(value).Convert(b.dest.Type).Interface()
		}
		b.dest.SetValue(destPtr, value)
	}
	return dest, nil
}
