/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Field leaves (spec.md §3).
 */

package fixtree

import (
	"strconv"

	"github.com/fixorch/fixtree/schema"
)

// Field is a single (tag, value) leaf. Spec is nil when the tag is
// unknown to the Repository (spec.md §3's "unknown/custom field").
// Fields never contain other nodes.
type Field struct {
	Tag   int
	Value string
	Spec  *schema.FieldSpec
}

func (*Field) isNode() {}

// TagName returns the field's symbolic name, or the decimal tag if
// the field is unknown (spec.md §6, Field.tag_name).
func (f *Field) TagName() string {
	if f.Spec == nil {
		return strconv.Itoa(f.Tag)
	}
	return f.Spec.Name
}

// ValueName returns the enumeration label for the field's value if its
// FieldSpec declares a matching code, otherwise the raw value
// (spec.md §6, Field.value_name).
func (f *Field) ValueName(repo *schema.Repository) string {
	if f.Spec == nil || !f.Spec.HasCodeSet {
		return f.Value
	}
	if name, ok := repo.CodeSetByID(f.Spec.CodeSetID).NameForValue(f.Value); ok {
		return name
	}
	return f.Value
}
