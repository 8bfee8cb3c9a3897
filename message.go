/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Message: the tree root (spec.md §3, §6).
 */

package fixtree

import "github.com/fixorch/fixtree/schema"

// Message is the root of a parsed FIX message: an ordered sequence of
// Field and GroupList children, keyed by the msgType found on the wire
// (spec.md §3). Spec is nil when the msgType is unknown to the
// Repository (spec.md §9, "Empty MessageSpec").
type Message struct {
	MsgType  string
	Spec     *schema.MessageSpec
	Children []node
	repo     *schema.Repository
}

func (*Message) isNode() {}

// Parent is always nil for the Message root (spec.md §4.3).
func (m *Message) Parent() context { return nil }

// AddChild appends a Field or GroupList to the message's top level.
func (m *Message) AddChild(n node) {
	m.Children = append(m.Children, n)
}

// BeginFieldID is the sentinel, since a Message is never a Group.
func (m *Message) BeginFieldID() int { return noBeginFieldID }

// ContainsField is always true: the Message root is permissive
// (spec.md §4.2, MessageSpec.in_spec).
func (m *Message) ContainsField(repo *schema.Repository, tag int) bool {
	return true
}

// IsAdmin reports whether this message's schema category is "Session"
// (spec.md §6, Message.is_admin). Returns false if the MessageSpec is
// unknown.
func (m *Message) IsAdmin() bool {
	return m.Spec.IsAdmin()
}

// FieldByID returns the first top-level occurrence of tag, without
// recursing into group lists (spec.md §6, Message.get_field_by_id).
func (m *Message) FieldByID(tag int) *Field {
	for _, child := range m.Children {
		if f, ok := child.(*Field); ok && f.Tag == tag {
			return f
		}
	}
	return nil
}
