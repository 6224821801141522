// Package convert copies values between layered structs (model, domain,
// DTO) by field name.
package convert

import (
	"github.com/jinzhu/copier"
)

// StructAssign copies matching exported fields from source into target
// and returns target. Fields missing on either side are skipped.
func StructAssign(source interface{}, target interface{}) interface{} {
	_ = copier.Copy(target, source)
	return target
}
