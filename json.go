/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * JSON rendering (spec.md §4.5).
 */

package fixtree

import (
	"bytes"
	"encoding/json"

	"github.com/fixorch/fixtree/schema"
)

// entry is one key/value pair destined for a rendered JSON object,
// built in wire order. value is either a string (a Field) or a
// []*groupEntries (a GroupList, rendered as a JSON array with one
// object literal per Group).
type entry struct {
	key   string
	value interface{}
}

type groupEntries struct {
	entries []*entry
}

// ToJSON renders the message per spec.md §4.5: each Field becomes
// "name": "value", each GroupList becomes "name": [...]. Duplicate keys
// from repeated non-group fields are preserved and all emitted, in
// order — the default policy spec.md §4.5 describes; see ToJSONArrays
// for the array-based alternative.
func (m *Message) ToJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeObject(&buf, buildEntries(m.Children, m.repo)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSONArrays renders the message like ToJSON, except that when the
// same top-level (or group-level) key occurs more than once, its
// values are collected into a single JSON array under that key instead
// of repeating the key — the alternative spec.md §4.5 and §9's
// "Duplicate scalar tags" open question explicitly invite.
func (m *Message) ToJSONArrays() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeObjectDeduped(&buf, buildEntries(m.Children, m.repo)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildEntries walks a node list (a Message's or Group's children) and
// produces the ordered entries to render as a JSON object.
func buildEntries(children []node, repo *schema.Repository) []*entry {
	entries := make([]*entry, 0, len(children))
	for _, child := range children {
		switch n := child.(type) {
		case *Field:
			entries = append(entries, &entry{key: n.TagName(), value: n.ValueName(repo)})
		case *GroupList:
			elems := make([]*groupEntries, 0, len(n.Elements))
			for _, g := range n.Elements {
				elems = append(elems, &groupEntries{entries: buildEntries(g.Children, repo)})
			}
			entries = append(entries, &entry{key: n.Spec.Name, value: elems})
		}
	}
	return entries
}

// writeObject renders entries as a JSON object literal, writing every
// entry even when keys repeat (spec.md §4.5's default policy).
func writeObject(buf *bytes.Buffer, entries []*entry) error {
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKeyValue(buf, e, writeObject); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeKeyValue writes one "key":value pair; Group elements of a
// GroupList value are rendered with writeObj, so the caller's policy
// applies at every level.
func writeKeyValue(buf *bytes.Buffer, e *entry, writeObj func(*bytes.Buffer, []*entry) error) error {
	key, err := json.Marshal(e.key)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteByte(':')
	return writeValue(buf, e.value, writeObj)
}

// writeValue writes a Field's string value, or a GroupList's elements
// as a JSON array of objects rendered with writeObj.
func writeValue(buf *bytes.Buffer, value interface{}, writeObj func(*bytes.Buffer, []*entry) error) error {
	switch v := value.(type) {
	case string:
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(val)
	case []*groupEntries:
		buf.WriteByte('[')
		for i, g := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeObj(buf, g.entries); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

// writeObjectDeduped renders entries the same way as writeObject, but
// collapses repeated keys into a single "key": [v1, v2, ...] array
// entry in place of the first occurrence (spec.md §9, "Duplicate
// scalar tags" — the array-emitting alternative).
func writeObjectDeduped(buf *bytes.Buffer, entries []*entry) error {
	order := make([]string, 0, len(entries))
	seen := make(map[string][]*entry, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.key]; !ok {
			order = append(order, e.key)
		}
		seen[e.key] = append(seen[e.key], e)
	}

	buf.WriteByte('{')
	for i, key := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		group := seen[key]
		if len(group) == 1 {
			if err := writeKeyValue(buf, group[0], writeObjectDeduped); err != nil {
				return err
			}
			continue
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.WriteByte('[')
		for j, e := range group {
			if j > 0 {
				buf.WriteByte(',')
			}
			// A repeated key is usually a scalar Field, but may also be a
			// GroupList when the same num-in-group tag opens a second list
			// in one context; each occurrence becomes one array element.
			if err := writeValue(buf, e.value, writeObjectDeduped); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return nil
}
