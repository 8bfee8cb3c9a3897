/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Repeating groups (spec.md §3).
 */

package fixtree

import "github.com/fixorch/fixtree/schema"

// GroupList is an ordered sequence of Group elements introduced by a
// specific num-in-group Field. All of its children are Groups against
// the same GroupSpec (spec.md §3).
type GroupList struct {
	Spec     *schema.GroupSpec
	Elements []*Group
	parent   context
}

func (*GroupList) isNode() {}

// Parent returns the context GroupList was opened against (a Message
// or a Group).
func (gl *GroupList) Parent() context { return gl.parent }

// AddChild appends a Group to this list. n must be a *Group; any other
// node indicates a parser bug, since a GroupList's children are always
// Groups against its own GroupSpec (spec.md §3 invariant).
func (gl *GroupList) AddChild(n node) {
	gl.Elements = append(gl.Elements, n.(*Group))
}

// BeginFieldID is the begin-field of the group this list holds
// elements of — matching it opens the list's first Group.
func (gl *GroupList) BeginFieldID() int {
	return gl.Spec.BeginFieldID()
}

// ContainsField is always false: a raw GroupList (before its first
// Group element exists) accepts nothing but its own begin field, which
// the parser's clause (3) matches before ever consulting
// ContainsField. Any other field seen while the context is still a
// bare GroupList means the group has no elements and the field belongs
// to an outer scope.
func (gl *GroupList) ContainsField(repo *schema.Repository, tag int) bool {
	return false
}

// Group is one element of a GroupList. Its first child is always a
// Field whose tag equals its spec's declared first field id
// (spec.md §3 invariant).
type Group struct {
	Spec     *schema.GroupSpec
	Children []node
	parent   *GroupList
}

func (*Group) isNode() {}

// Parent returns the GroupList this Group is an element of.
func (g *Group) Parent() context { return g.parent }

// AddChild appends a Field or nested GroupList to this Group.
func (g *Group) AddChild(n node) {
	g.Children = append(g.Children, n)
}

// BeginFieldID returns the group's declared first field id.
func (g *Group) BeginFieldID() int {
	return g.Spec.BeginFieldID()
}

// ContainsField delegates to the GroupSpec's InSpec predicate
// (spec.md §4.2).
func (g *Group) ContainsField(repo *schema.Repository, tag int) bool {
	return g.Spec.InSpec(repo, tag)
}
