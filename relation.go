package ormbridge

import (
	"fmt"
	"strings"

	"github.com/viant/ormbridge/tags"
	"gorm.io/gorm/schema"
)

// referential actions shared by source and destination frameworks
var constraintActions = map[string]string{
	"CASCADE":     "CASCADE",
	"RESTRICT":    "RESTRICT",
	"SET NULL":    "SET NULL",
	"SET DEFAULT": "SET DEFAULT",
	"NO ACTION":   "NO ACTION",
}

// relationField maps a source relationship onto a destination relation field.
// The related destination model is converted independently; the field keeps its
// declared Go shape since the join is expressed with column names.
func relationField(rel *schema.Relationship) (*DestField, error) {
	tag := &tags.Tag{Name: DestTagName}
	switch rel.Type {
	case schema.BelongsTo:
		tag.Append("rel:belongs-to")
	case schema.HasOne:
		tag.Append("rel:has-one")
	case schema.HasMany:
		tag.Append("rel:has-many")
	case schema.Many2Many:
		if rel.JoinTable == nil {
			return nil, fmt.Errorf("many2many relation %s has no join table", rel.Name)
		}
		tag.Append("m2m:" + rel.JoinTable.Table)
	default:
		return nil, fmt.Errorf("unsupported relation kind %q on %s", rel.Type, rel.Name)
	}

	if rel.Type != schema.Many2Many {
		if join := joinExpr(rel); join != "" {
			tag.Append("join:" + join)
		}
		if constraint := rel.ParseConstraint(); constraint != nil {
			if action, ok := constraintActions[strings.ToUpper(strings.TrimSpace(constraint.OnDelete))]; ok {
				tag.Append("on_delete:" + action)
			}
		}
	}
	return &DestField{
		Name: rel.Name,
		Type: rel.Field.FieldType,
		Tag:  tags.Tags{tag}.StructTag(),
	}, nil
}

// joinExpr renders join column pairs as base_column=joined_column
func joinExpr(rel *schema.Relationship) string {
	items := make([]string, 0, len(rel.References))
	for _, reference := range rel.References {
		if reference.PrimaryKey == nil || reference.ForeignKey == nil {
			continue
		}
		if reference.OwnPrimaryKey { //foreign key lives on the related model
			items = append(items, reference.PrimaryKey.DBName+"="+reference.ForeignKey.DBName)
			continue
		}
		items = append(items, reference.ForeignKey.DBName+"="+reference.PrimaryKey.DBName)
	}
	return strings.Join(items, ",")
}
