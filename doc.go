// Package ormbridge translates model declarations between ORM frameworks at
// definition time: gorm declared models become bun model definitions built
// with reflect.StructOf. Conversion is driven by a registry of per field type
// converters with exact type matching and last write wins registration;
// redefinition blocks bypass conversion for listed fields.
package ormbridge
