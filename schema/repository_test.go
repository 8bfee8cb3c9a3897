/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Repository tests.
 */

package schema_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixorch/fixtree/schema"
)

func loadSample(t *testing.T) *schema.Repository {
	t.Helper()
	f, err := os.Open("../testdata/orchestra_sample.xml")
	require.NoError(t, err)
	defer f.Close()

	repo, err := schema.Load(f)
	require.NoError(t, err)
	return repo
}

func TestLoadCounts(t *testing.T) {
	repo := loadSample(t)

	assert.Equal(t, 4, repo.MessageCount())
	assert.Equal(t, 3, repo.GroupCount())
	assert.Equal(t, 1, repo.ComponentCount())
	assert.True(t, repo.FieldCount() > 0)
}

func TestLoadVersion(t *testing.T) {
	repo := loadSample(t)

	assert.Equal(t, "FIX.4.4", repo.Version())
}

func TestMessageSpecsPreservesDeclarationOrder(t *testing.T) {
	repo := loadSample(t)

	specs := repo.MessageSpecs()
	require.Len(t, specs, 4)

	var msgTypes []string
	for _, s := range specs {
		msgTypes = append(msgTypes, s.MsgType)
	}
	assert.Equal(t, []string{"A", "0", "6", "AE"}, msgTypes)
}

func TestMessageSpecByType(t *testing.T) {
	repo := loadSample(t)

	logon := repo.MessageSpecByType("A")
	require.NotNil(t, logon)
	assert.Equal(t, "Logon", logon.Name)
	assert.Equal(t, "Session", logon.Category)
	assert.True(t, logon.IsAdmin())

	ioi := repo.MessageSpecByType("6")
	require.NotNil(t, ioi)
	assert.False(t, ioi.IsAdmin())

	assert.Nil(t, repo.MessageSpecByType("ZZ"))
}

func TestFieldSpecByID(t *testing.T) {
	repo := loadSample(t)

	f := repo.FieldSpecByID(49)
	require.NotNil(t, f)
	assert.Equal(t, "SenderCompID", f.Name)

	assert.Nil(t, repo.FieldSpecByID(99999))
}

func TestGroupByNumFieldReverseIndex(t *testing.T) {
	repo := loadSample(t)

	g := repo.GroupByNumField(552)
	require.NotNil(t, g)
	assert.Equal(t, "Sides", g.Name)
	assert.Equal(t, g, repo.GroupByID(2))

	// spec.md §4.2: for every GroupSpec g, group_spec_bynum_field(g.num_field_id) == g
	for _, id := range []int{1, 2, 3} {
		group := repo.GroupByID(id)
		require.NotNil(t, group)
		assert.Same(t, group, repo.GroupByNumField(group.NumInGroupID))
	}
}

func TestFieldSpecIsNumInGroupAndGroup(t *testing.T) {
	repo := loadSample(t)

	noSides := repo.FieldSpecByID(552)
	require.NotNil(t, noSides)
	assert.True(t, noSides.IsNumInGroup(repo))
	require.NotNil(t, noSides.Group())
	assert.Equal(t, "Sides", noSides.Group().Name)

	side := repo.FieldSpecByID(54)
	require.NotNil(t, side)
	assert.False(t, side.IsNumInGroup(repo))
	assert.Nil(t, side.Group())
}

func TestCodeSetNameForValue(t *testing.T) {
	repo := loadSample(t)

	msgType := repo.FieldSpecByID(35)
	require.NotNil(t, msgType)
	require.True(t, msgType.HasCodeSet)

	cs := repo.CodeSetByID(msgType.CodeSetID)
	require.NotNil(t, cs)

	name, ok := cs.NameForValue("A")
	assert.True(t, ok)
	assert.Equal(t, "Logon", name)

	_, ok = cs.NameForValue("Q")
	assert.False(t, ok)
}

func TestGroupSpecBeginFieldID(t *testing.T) {
	repo := loadSample(t)

	sides := repo.GroupByID(2)
	require.NotNil(t, sides)
	assert.Equal(t, 54, sides.BeginFieldID())
}

func TestGroupSpecInSpecViaComponentAndNestedGroup(t *testing.T) {
	repo := loadSample(t)

	partyIDs := repo.GroupByID(3)
	require.NotNil(t, partyIDs)

	assert.True(t, partyIDs.InSpec(repo, 453)) // its own num-in-group tag
	assert.True(t, partyIDs.InSpec(repo, 448)) // direct field ref
	assert.True(t, partyIDs.InSpec(repo, 447)) // via PartyComponent
	assert.True(t, partyIDs.InSpec(repo, 452)) // via PartyComponent
	assert.False(t, partyIDs.InSpec(repo, 54)) // belongs to the enclosing group, not this one

	sides := repo.GroupByID(2)
	assert.True(t, sides.InSpec(repo, 54))  // direct field ref
	assert.True(t, sides.InSpec(repo, 453)) // nested group's num-in-group tag is in-spec for the parent
	assert.True(t, sides.InSpec(repo, 578)) // direct field ref after the nested group
	// spec.md §4.2: "any nested GroupSpec's in_spec(f) holds" is an
	// unqualified recursive OR, so a nested group's own direct fields
	// are in-spec for the enclosing group too.
	assert.True(t, sides.InSpec(repo, 448))
	assert.False(t, sides.InSpec(repo, 217)) // belongs to an unrelated group entirely
}

func TestMessageSpecInSpecIsPermissive(t *testing.T) {
	repo := loadSample(t)
	logon := repo.MessageSpecByType("A")
	assert.True(t, logon.InSpec(repo, 99999))
}
