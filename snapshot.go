package ormbridge

import (
	"github.com/francoispqt/gojay"
)

type (
	fieldSnapshot  struct{ field *DestField }
	fieldSnapshots []*DestField
)

// MarshalJSONObject marshals the converted definition
func (m *Model) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", m.name)
	enc.StringKey("table", m.table)
	enc.StringKey("alias", m.alias)
	enc.ArrayKey("fields", fieldSnapshots(m.fields))
}

// IsNil returns true if model is nil
func (m *Model) IsNil() bool {
	return m == nil
}

func (s fieldSnapshots) MarshalJSONArray(enc *gojay.Encoder) {
	for _, field := range s {
		enc.Object(&fieldSnapshot{field: field})
	}
}

func (s fieldSnapshots) IsNil() bool {
	return len(s) == 0
}

func (f *fieldSnapshot) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", f.field.Name)
	enc.StringKey("type", f.field.Type.String())
	enc.StringKey("tag", string(f.field.Tag))
}

func (f *fieldSnapshot) IsNil() bool {
	return f == nil || f.field == nil
}

// Snapshot returns a stable JSON representation of the converted definition,
// suitable for diffing and golden tests
func (m *Model) Snapshot() ([]byte, error) {
	return gojay.MarshalJSONObject(m)
}
