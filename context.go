/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Tree-node contracts (spec.md §4.3).
 *
 * context is the small capability interface the structural parser
 * dispatches through: Message, GroupList and Group all answer
 * InSpec, BeginFieldID and AddChild polymorphically, without an open
 * inheritance hierarchy (spec.md §9, "Dynamic dispatch on context").
 */

package fixtree

import "github.com/fixorch/fixtree/schema"

// noBeginFieldID is the sentinel BeginFieldID returned by the Message
// root, which is neither a Group nor a GroupList. It compares unequal
// to any real FIX tag.
const noBeginFieldID = -1

// node is any value that can be a child of a context: *Field,
// *GroupList or *Group.
type node interface {
	isNode()
}

// context is the lexical parent the parser's cursor currently points
// at: *Message, *GroupList, or *Group.
type context interface {
	node
	// Parent returns the lexical parent context, or nil only for the
	// Message root (spec.md §4.3, parent_context).
	Parent() context
	// AddChild appends n to this context's ordered children
	// (spec.md §4.3, add_element).
	AddChild(n node)
	// BeginFieldID returns the declared first field id for a Group (or
	// the group a GroupList will open), or noBeginFieldID otherwise
	// (spec.md §4.3, group_begin_field_id).
	BeginFieldID() int
	// ContainsField delegates to the underlying spec's InSpec
	// predicate (spec.md §4.3, contains_field).
	ContainsField(repo *schema.Repository, tag int) bool
}
