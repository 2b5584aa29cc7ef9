package ormbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_Snapshot(t *testing.T) {
	converter := New()
	model, err := converter.Convert(&Label{})
	if !assert.Nil(t, err) {
		return
	}
	actual, err := model.Snapshot()
	if !assert.Nil(t, err) {
		return
	}
	expect := `{"name":"Label","table":"labels","alias":"labels","fields":[` +
		`{"name":"ID","type":"uint64","tag":"bun:\"id,type:bigint,pk,autoincrement\""},` +
		`{"name":"Name","type":"string","tag":"bun:\"name,type:varchar(64),notnull,unique\""}]}`
	assert.Equal(t, expect, string(actual))

	//snapshots are stable across conversions
	again, err := converter.Convert(&Label{})
	assert.Nil(t, err)
	repeated, err := again.Snapshot()
	assert.Nil(t, err)
	assert.Equal(t, string(actual), string(repeated))
}
