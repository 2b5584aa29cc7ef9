package ormbridge

import (
	"strconv"

	"github.com/viant/ormbridge/tags"
)

// column types target the Postgres dialect, the reference dialect of this bridge;
// converters for other dialects register over these
func fixedColumn(columnType string) ColumnType {
	return func(source *Field) string {
		return columnType
	}
}

func textColumn(source *Field) string {
	if source.Size > 0 {
		return "varchar(" + strconv.Itoa(source.Size) + ")"
	}
	return "text"
}

func floatColumn(source *Field) string {
	if source.Precision > 0 {
		return "numeric(" + strconv.Itoa(source.Precision) + "," + strconv.Itoa(source.Scale) + ")"
	}
	return "double precision"
}

// autoTime defaults auto populated timestamps on the destination side
func autoTime(source *Field, dest *tags.Tag) error {
	if source.AutoCreate && !source.HasDefault {
		dest.Append("default:current_timestamp")
	}
	return nil
}

func builtins() []*FieldConverter {
	return []*FieldConverter{
		NewFieldConverter(stringType, stringType, WithColumnType(textColumn)),
		NewFieldConverter(stringPtrType, stringPtrType, WithColumnType(textColumn), WithNullZero()),

		NewFieldConverter(intType, intType, WithColumnType(fixedColumn("bigint"))),
		NewFieldConverter(int8Type, int8Type, WithColumnType(fixedColumn("smallint"))),
		NewFieldConverter(int16Type, int16Type, WithColumnType(fixedColumn("smallint"))),
		NewFieldConverter(int32Type, int32Type, WithColumnType(fixedColumn("integer"))),
		NewFieldConverter(int64Type, int64Type, WithColumnType(fixedColumn("bigint"))),
		NewFieldConverter(uintType, uintType, WithColumnType(fixedColumn("bigint"))),
		NewFieldConverter(uint8Type, uint8Type, WithColumnType(fixedColumn("smallint"))),
		NewFieldConverter(uint16Type, uint16Type, WithColumnType(fixedColumn("integer"))),
		NewFieldConverter(uint32Type, uint32Type, WithColumnType(fixedColumn("bigint"))),
		NewFieldConverter(uint64Type, uint64Type, WithColumnType(fixedColumn("bigint"))),

		NewFieldConverter(float32Type, float32Type, WithColumnType(fixedColumn("real"))),
		NewFieldConverter(float64Type, float64Type, WithColumnType(floatColumn)),
		NewFieldConverter(boolType, boolType, WithColumnType(fixedColumn("boolean"))),

		NewFieldConverter(timeType, timeType, WithColumnType(fixedColumn("timestamptz")), WithReshape(autoTime)),
		NewFieldConverter(timePtrType, timePtrType, WithColumnType(fixedColumn("timestamptz")), WithNullZero(), WithReshape(autoTime)),

		NewFieldConverter(bytesType, bytesType, WithColumnType(fixedColumn("bytea"))),
		NewFieldConverter(rawMessageType, rawMessageType, WithColumnType(fixedColumn("jsonb"))),

		NewFieldConverter(nullStringType, nullStringType, WithColumnType(textColumn), WithNullZero()),
		NewFieldConverter(nullInt64Type, nullInt64Type, WithColumnType(fixedColumn("bigint")), WithNullZero()),
		NewFieldConverter(nullInt32Type, nullInt32Type, WithColumnType(fixedColumn("integer")), WithNullZero()),
		NewFieldConverter(nullFloat64Type, nullFloat64Type, WithColumnType(floatColumn), WithNullZero()),
		NewFieldConverter(nullBoolType, nullBoolType, WithColumnType(fixedColumn("boolean")), WithNullZero()),
		NewFieldConverter(nullTimeType, nullTimeType, WithColumnType(fixedColumn("timestamptz")), WithNullZero()),
	}
}
