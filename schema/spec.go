/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Schema Repository
 *
 * Spec objects: FieldSpec, GroupSpec, ComponentSpec, CodeSetSpec,
 * MessageSpec, and the in_spec membership predicates (spec.md §4.2).
 */

package schema

import (
	orderedmap "github.com/elliotchance/orderedmap/v3"
)

// FieldType is a FIX Orchestra field's logical type, e.g. "NumInGroup",
// "String", "Qty".
type FieldType string

// NumInGroup is the logical type that marks a field as the counting
// field of a repeating group (spec.md §3, "is-num-in-group").
const NumInGroup FieldType = "NumInGroup"

// FieldSpec describes one field number: its symbolic name, logical
// type, optional enumeration (CodeSet) and, if it announces a
// repeating group, the GroupSpec it opens.
type FieldSpec struct {
	ID        int
	Name      string
	Type      FieldType
	CodeSetID int  // 0 if the field has no enumeration
	HasCodeSet bool

	group *GroupSpec // bound by build if this field opens a group
}

// IsNumInGroup reports whether this field's logical type is NumInGroup,
// either directly or via a codeset whose underlying type is NumInGroup.
func (f *FieldSpec) IsNumInGroup(repo *Repository) bool {
	if f.Type == NumInGroup {
		return true
	}
	if f.HasCodeSet {
		if cs := repo.CodeSetByID(f.CodeSetID); cs != nil && cs.Type == NumInGroup {
			return true
		}
	}
	return false
}

// Group returns the GroupSpec this field announces, or nil if this
// field is not a num-in-group field.
func (f *FieldSpec) Group() *GroupSpec {
	return f.group
}

// FieldRef is a reference to a field from a message/group/component
// structure, in declaration order.
type FieldRef struct {
	ID       int
	Required bool
}

// GroupRef references a nested group from a group or component.
type GroupRef struct {
	ID       int
	Required bool
}

// ComponentRef references a component from a message or group.
type ComponentRef struct {
	ID       int
	Required bool
}

// CodeSetSpec is a named enumeration: an underlying primitive type plus
// a list of (value, name) codes.
type CodeSetSpec struct {
	ID    int
	Name  string
	Type  FieldType
	Codes *orderedmap.OrderedMap[string, string] // value -> name, declaration order
}

// NameForValue returns the symbolic code name for a raw wire value, or
// ("", false) if the value has no declared code.
func (c *CodeSetSpec) NameForValue(value string) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.Codes.Get(value)
}

// ComponentSpec is a named bundle of field/group/component refs
// inlined, for membership purposes, wherever it is referenced.
type ComponentSpec struct {
	ID         int
	Name       string
	Fields     *orderedmap.OrderedMap[int, FieldRef]     // tag -> ref
	Groups     *orderedmap.OrderedMap[int, GroupRef]      // group id -> ref
	Components *orderedmap.OrderedMap[int, ComponentRef]  // component id -> ref
}

// InSpec reports whether tag is reachable from c: its direct field
// refs, nested components, or anything in_spec for a referenced
// GroupSpec — GroupSpec.InSpec without the num-in-group check
// (spec.md §4.2, ComponentSpec.in_spec).
func (c *ComponentSpec) InSpec(repo *Repository, tag int) bool {
	if c == nil {
		return false
	}
	if _, ok := c.Fields.Get(tag); ok {
		return true
	}
	for el := c.Components.Front(); el != nil; el = el.Next() {
		if sub := repo.ComponentByID(el.Value.ID); sub.InSpec(repo, tag) {
			return true
		}
	}
	for el := c.Groups.Front(); el != nil; el = el.Next() {
		if g := repo.GroupByID(el.Value.ID); g.InSpec(repo, tag) {
			return true
		}
	}
	return false
}

// GroupSpec describes one repeating group: the ordered field refs it
// permits directly, the id of its num-in-group counting field, and its
// nested group/component refs.
type GroupSpec struct {
	ID           int
	Name         string
	NumInGroupID int
	Fields       *orderedmap.OrderedMap[int, FieldRef]
	Groups       *orderedmap.OrderedMap[int, GroupRef]
	Components   *orderedmap.OrderedMap[int, ComponentRef]
}

// BeginFieldID returns the tag of the first field declared in this
// group — the "group-begin field" whose reappearance marks a new
// element (spec.md §3/§4.4).
func (g *GroupSpec) BeginFieldID() int {
	if g == nil || g.Fields.Len() == 0 {
		return 0
	}
	return g.Fields.Front().Key
}

// InSpec reports whether tag is reachable from g (spec.md §4.2,
// GroupSpec.in_spec): its own num-in-group tag, its direct field and
// component refs, or — per the unqualified recursive OR in spec.md's
// definition — anything in_spec for a nested GroupSpec, including that
// nested group's own direct fields.
func (g *GroupSpec) InSpec(repo *Repository, tag int) bool {
	if g == nil {
		return false
	}
	if tag == g.NumInGroupID {
		return true
	}
	if _, ok := g.Fields.Get(tag); ok {
		return true
	}
	for el := g.Components.Front(); el != nil; el = el.Next() {
		if c := repo.ComponentByID(el.Value.ID); c.InSpec(repo, tag) {
			return true
		}
	}
	for el := g.Groups.Front(); el != nil; el = el.Next() {
		if sub := repo.GroupByID(el.Value.ID); sub.InSpec(repo, tag) {
			return true
		}
	}
	return false
}

// MessageSpec describes one msgType: its symbolic name, category, and
// top-level structure. For membership purposes the top level is
// permissive (spec.md §4.2, MessageSpec.in_spec): any field belongs.
type MessageSpec struct {
	MsgType    string
	Name       string
	Category   string
	Fields     *orderedmap.OrderedMap[int, FieldRef]
	Groups     *orderedmap.OrderedMap[int, GroupRef]
	Components *orderedmap.OrderedMap[int, ComponentRef]
}

// InSpec always returns true: the Message root accepts any field
// (spec.md §4.2).
func (m *MessageSpec) InSpec(repo *Repository, tag int) bool {
	return true
}

// IsAdmin reports whether this message's category marks it as a
// session-layer administrative message (spec.md §6, Message.is_admin).
func (m *MessageSpec) IsAdmin() bool {
	return m != nil && m.Category == "Session"
}
