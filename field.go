package ormbridge

import (
	"database/sql"
	"encoding/json"
	"reflect"
	"time"
)

type (
	//Field describes a column declared on a source model
	Field struct {
		Name          string //declaring struct field name
		Column        string
		Type          reflect.Type
		PrimaryKey    bool
		AutoIncrement bool
		NotNull       bool
		Unique        bool
		HasDefault    bool
		Default       string
		Size          int
		Precision     int
		Scale         int
		Comment       string
		AutoCreate    bool
		AutoUpdate    bool
		Settings      map[string]string //raw source tag settings
	}

	//DestField is a ready destination column definition
	DestField struct {
		Name string
		Type reflect.Type
		Tag  reflect.StructTag
	}
)

// Setting returns raw source tag setting value
func (f *Field) Setting(key string) string {
	if len(f.Settings) == 0 {
		return ""
	}
	return f.Settings[key]
}

var (
	stringType     = reflect.TypeOf("")
	stringPtrType  = reflect.PtrTo(stringType)
	intType        = reflect.TypeOf(0)
	int8Type       = reflect.TypeOf(int8(0))
	int16Type      = reflect.TypeOf(int16(0))
	int32Type      = reflect.TypeOf(int32(0))
	int64Type      = reflect.TypeOf(int64(0))
	uintType       = reflect.TypeOf(uint(0))
	uint8Type      = reflect.TypeOf(uint8(0))
	uint16Type     = reflect.TypeOf(uint16(0))
	uint32Type     = reflect.TypeOf(uint32(0))
	uint64Type     = reflect.TypeOf(uint64(0))
	float32Type    = reflect.TypeOf(float32(0))
	float64Type    = reflect.TypeOf(float64(0))
	boolType       = reflect.TypeOf(true)
	timeType       = reflect.TypeOf(time.Time{})
	timePtrType    = reflect.PtrTo(timeType)
	bytesType      = reflect.TypeOf([]byte{})
	rawMessageType = reflect.TypeOf(json.RawMessage{})

	nullStringType  = reflect.TypeOf(sql.NullString{})
	nullInt64Type   = reflect.TypeOf(sql.NullInt64{})
	nullInt32Type   = reflect.TypeOf(sql.NullInt32{})
	nullFloat64Type = reflect.TypeOf(sql.NullFloat64{})
	nullBoolType    = reflect.TypeOf(sql.NullBool{})
	nullTimeType    = reflect.TypeOf(sql.NullTime{})
)
