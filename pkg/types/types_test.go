package types_test

import (
	"testing"

	"github.com/azlands/daoscan/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestConflictsKeys(t *testing.T) {
	c := types.Conflicts{
		"zz_armor.gda": {"/a", "/b"},
		"ambient.gda":  {"/c", "/d"},
		"m_items.gda":  {"/e", "/f"},
	}

	assert.Equal(t, []string{"ambient.gda", "m_items.gda", "zz_armor.gda"}, c.Keys())
}

func TestConflictsAuthoritative(t *testing.T) {
	t.Run("last_sorted_path", func(t *testing.T) {
		c := types.Conflicts{
			"x.gda": {"/game/a.erf", "/game/packages/core/override/x.gda"},
		}
		assert.Equal(t, "/game/packages/core/override/x.gda", c.Authoritative("x.gda"))
	})

	t.Run("missing_key", func(t *testing.T) {
		c := types.Conflicts{}
		assert.Equal(t, "", c.Authoritative("nope"))
	})
}

func TestConflictsTotal(t *testing.T) {
	c := types.Conflicts{
		"a.gda": {"/1", "/2"},
		"b.gda": {"/1", "/2", "/3"},
	}
	assert.Equal(t, 5, c.Total())
}

func TestConflictsGroups(t *testing.T) {
	c := types.Conflicts{
		"b.gda": {"/1", "/2"},
		"a.gda": {"/3", "/4"},
	}

	groups := c.Groups()
	assert.Len(t, groups, 2)
	assert.Equal(t, "a.gda", groups[0].Key)
	assert.Equal(t, "b.gda", groups[1].Key)
	assert.Equal(t, []string{"/1", "/2"}, groups[1].Paths)
}

func TestWarningMessage(t *testing.T) {
	w := types.Warning{Path: "/game/broken.erf", Err: assert.AnError}
	assert.Contains(t, w.Message(), "/game/broken.erf")
	assert.Contains(t, w.Message(), assert.AnError.Error())

	noErr := types.Warning{Path: "/game/odd.erf"}
	assert.Equal(t, "/game/odd.erf", noErr.Message())
}
