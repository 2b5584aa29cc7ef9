package ormbridge

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModel_NewRecord(t *testing.T) {
	converter := New()
	model, err := converter.Convert(&Author{})
	if !assert.Nil(t, err) {
		return
	}
	email := "dev@viantinc.com"
	created := time.Date(2024, 5, 11, 10, 30, 0, 0, time.UTC)
	source := &Author{
		ID:        12,
		Name:      "Ana",
		Email:     &email,
		Bio:       "bio",
		CreatedAt: created,
	}
	record, err := model.NewRecord(source)
	if !assert.Nil(t, err) {
		return
	}
	value := reflect.ValueOf(record).Elem()
	assert.Equal(t, uint64(12), value.FieldByName("ID").Interface())
	assert.Equal(t, "Ana", value.FieldByName("Name").Interface())
	assert.Equal(t, &email, value.FieldByName("Email").Interface())
	assert.Equal(t, created, value.FieldByName("CreatedAt").Interface())
}

func TestModel_NewRecordConverts(t *testing.T) {
	registry := NewRegistry(builtins()...)
	registry.Register(NewFieldConverter(
		reflect.TypeOf(Money(0)),
		reflect.TypeOf(int64(0)),
		WithColumnType(fixedColumn("bigint"))))
	converter := New(WithRegistry(registry))

	model, err := converter.Convert(&Invoice{})
	if !assert.Nil(t, err) {
		return
	}
	record, err := model.NewRecord(&Invoice{ID: 3, Amount: Money(1250)})
	if !assert.Nil(t, err) {
		return
	}
	value := reflect.ValueOf(record).Elem()
	//destination column type differs, value is converted
	assert.Equal(t, int64(1250), value.FieldByName("Amount").Interface())
}

func TestModel_NewRecordInvalidSource(t *testing.T) {
	converter := New()
	model, err := converter.Convert(&Label{})
	if !assert.Nil(t, err) {
		return
	}
	_, err = model.NewRecord(Label{})
	assert.NotNil(t, err)
	_, err = model.NewRecord(&Author{})
	assert.NotNil(t, err)
}
