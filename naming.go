package ormbridge

import (
	"github.com/viant/tagly/format/text"
)

// columnName derives a destination column name from a field name
func columnName(fieldName string) string {
	if fieldName == "ID" {
		return "id"
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, text.CaseFormatLowerUnderscore)
}
