/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Schema Repository
 *
 * Repository is the indexed, read-only view over a parsed Orchestra
 * document (spec.md §4.2). It is built once by Load and is safe for
 * concurrent use by any number of parses afterwards (spec.md §5).
 */

package schema

import (
	"encoding/xml"
	"fmt"
	"io"

	orderedmap "github.com/elliotchance/orderedmap/v3"
)

// Repository is an indexed dictionary-of-dictionaries over a FIX
// Orchestra schema: message specs by msgType, field specs by tag,
// group specs by id, codeset specs by id, component specs by id, and
// the num-field -> group reverse index spec.md §4.2 requires.
type Repository struct {
	messagesByType  *orderedmap.OrderedMap[string, *MessageSpec]
	fieldsByID      *orderedmap.OrderedMap[int, *FieldSpec]
	groupsByID      *orderedmap.OrderedMap[int, *GroupSpec]
	groupsByNumID   *orderedmap.OrderedMap[int, *GroupSpec]
	componentsByID  *orderedmap.OrderedMap[int, *ComponentSpec]
	codeSetsByID    *orderedmap.OrderedMap[int, *CodeSetSpec]

	version string
}

// Load parses an Orchestra XML document and builds every index
// eagerly (spec.md §5's "caches... populated eagerly at construction").
func Load(r io.Reader) (*Repository, error) {
	var doc Orchestra
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode orchestra document: %w", err)
	}
	return build(&doc)
}

func build(doc *Orchestra) (*Repository, error) {
	repo := &Repository{
		messagesByType: orderedmap.NewOrderedMap[string, *MessageSpec](),
		fieldsByID:     orderedmap.NewOrderedMap[int, *FieldSpec](),
		groupsByID:     orderedmap.NewOrderedMap[int, *GroupSpec](),
		groupsByNumID:  orderedmap.NewOrderedMap[int, *GroupSpec](),
		componentsByID: orderedmap.NewOrderedMap[int, *ComponentSpec](),
		codeSetsByID:   orderedmap.NewOrderedMap[int, *CodeSetSpec](),
		version:        doc.Version,
	}

	for _, cs := range doc.CodeSets {
		codes := orderedmap.NewOrderedMap[string, string]()
		for _, c := range cs.Code {
			codes.Set(c.Value, c.Name)
		}
		repo.codeSetsByID.Set(cs.ID, &CodeSetSpec{
			ID:    cs.ID,
			Name:  cs.Name,
			Type:  FieldType(cs.Type),
			Codes: codes,
		})
	}

	// Fields reference codesets by the field's declared type matching a
	// codeset's name; Orchestra ties them together by field type name
	// equalling the codeset name (a field's `type` attribute is either a
	// primitive type or a codeset name).
	codeSetIDByName := make(map[string]int, len(doc.CodeSets))
	for _, cs := range doc.CodeSets {
		codeSetIDByName[cs.Name] = cs.ID
	}

	for _, f := range doc.Fields {
		spec := &FieldSpec{
			ID:   f.ID,
			Name: f.Name,
			Type: FieldType(f.Type),
		}
		if csID, ok := codeSetIDByName[f.Type]; ok {
			spec.CodeSetID = csID
			spec.HasCodeSet = true
		}
		repo.fieldsByID.Set(f.ID, spec)
	}

	for _, g := range doc.Groups {
		repo.groupsByID.Set(g.ID, &GroupSpec{
			ID:           g.ID,
			Name:         g.Name,
			NumInGroupID: g.NumInGroup.ID,
			Fields:       fieldRefs(g.FieldRefs),
			Groups:       groupRefs(g.GroupRefs),
			Components:   componentRefs(g.ComponentRefs),
		})
	}

	for _, c := range doc.Components {
		repo.componentsByID.Set(c.ID, &ComponentSpec{
			ID:         c.ID,
			Name:       c.Name,
			Fields:     fieldRefs(c.FieldRefs),
			Groups:     groupRefs(c.GroupRefs),
			Components: componentRefs(c.ComponentRefs),
		})
	}

	for _, m := range doc.Messages {
		repo.messagesByType.Set(m.MsgType, &MessageSpec{
			MsgType:    m.MsgType,
			Name:       m.Name,
			Category:   m.Category,
			Fields:     fieldRefs(m.FieldRefs),
			Groups:     groupRefs(m.GroupRefs),
			Components: componentRefs(m.ComponentRefs),
		})
	}

	// Materialize the num-field -> GroupSpec reverse index (spec.md
	// §4.2: "for every GroupSpec g, group_spec_bynum_field(g.num_field_id)
	// == g") and bind each num-in-group FieldSpec to the group it opens.
	for el := repo.groupsByID.Front(); el != nil; el = el.Next() {
		g := el.Value
		repo.groupsByNumID.Set(g.NumInGroupID, g)
		if fs, ok := repo.fieldsByID.Get(g.NumInGroupID); ok {
			fs.group = g
		}
	}

	return repo, nil
}

func fieldRefs(refs []xmlFieldRef) *orderedmap.OrderedMap[int, FieldRef] {
	m := orderedmap.NewOrderedMap[int, FieldRef]()
	for _, r := range refs {
		m.Set(r.ID, FieldRef{ID: r.ID})
	}
	return m
}

func groupRefs(refs []xmlGroupRef) *orderedmap.OrderedMap[int, GroupRef] {
	m := orderedmap.NewOrderedMap[int, GroupRef]()
	for _, r := range refs {
		m.Set(r.ID, GroupRef{ID: r.ID})
	}
	return m
}

func componentRefs(refs []xmlComponentRef) *orderedmap.OrderedMap[int, ComponentRef] {
	m := orderedmap.NewOrderedMap[int, ComponentRef]()
	for _, r := range refs {
		m.Set(r.ID, ComponentRef{ID: r.ID})
	}
	return m
}

// MessageSpecByType returns the MessageSpec for a msgType, or nil if
// unknown (spec.md §4.2, message_spec_bytype).
func (r *Repository) MessageSpecByType(msgType string) *MessageSpec {
	spec, _ := r.messagesByType.Get(msgType)
	return spec
}

// FieldSpecByID returns the FieldSpec for a tag, or nil for an unknown
// tag (spec.md §4.2, field_spec_byid).
func (r *Repository) FieldSpecByID(tag int) *FieldSpec {
	spec, _ := r.fieldsByID.Get(tag)
	return spec
}

// GroupByID returns the GroupSpec for a group id, or nil
// (spec.md §4.2, group_spec_byid).
func (r *Repository) GroupByID(id int) *GroupSpec {
	spec, _ := r.groupsByID.Get(id)
	return spec
}

// GroupByNumField returns the GroupSpec a given num-in-group tag
// announces, or nil (spec.md §4.2, group_spec_bynum_field).
func (r *Repository) GroupByNumField(tag int) *GroupSpec {
	spec, _ := r.groupsByNumID.Get(tag)
	return spec
}

// ComponentByID returns the ComponentSpec for a component id, or nil
// (spec.md §4.2, component_spec_byid).
func (r *Repository) ComponentByID(id int) *ComponentSpec {
	spec, _ := r.componentsByID.Get(id)
	return spec
}

// CodeSetByID returns the CodeSetSpec for an id, or nil
// (spec.md §4.2, codeset_spec_byid).
func (r *Repository) CodeSetByID(id int) *CodeSetSpec {
	spec, _ := r.codeSetsByID.Get(id)
	return spec
}

// MessageCount, GroupCount, FieldCount and ComponentCount back the
// `fixtree schema` CLI subcommand's summary output.
func (r *Repository) MessageCount() int   { return r.messagesByType.Len() }
func (r *Repository) GroupCount() int     { return r.groupsByID.Len() }
func (r *Repository) FieldCount() int     { return r.fieldsByID.Len() }
func (r *Repository) ComponentCount() int { return r.componentsByID.Len() }

// Version returns the Orchestra document's declared `version` attribute,
// or "" if the document omitted it.
func (r *Repository) Version() string { return r.version }

// MessageSpecs returns every MessageSpec in declaration order, backing
// `fixtree schema --verbose`'s per-message listing.
func (r *Repository) MessageSpecs() []*MessageSpec {
	specs := make([]*MessageSpec, 0, r.messagesByType.Len())
	for el := r.messagesByType.Front(); el != nil; el = el.Next() {
		specs = append(specs, el.Value)
	}
	return specs
}
