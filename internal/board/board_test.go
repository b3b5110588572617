package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardwalk-games/boardwalk/internal/models"
)

func TestCatalogShape(t *testing.T) {
	ownable := 0
	for pos := 0; pos < Size; pos++ {
		sp := Space(pos)
		require.Equal(t, pos, sp.Position)
		require.NotEmpty(t, sp.Name)
		if sp.Ownable() {
			ownable++
			assert.Positive(t, sp.Price, "position %d", pos)
			assert.Positive(t, sp.MortgageValue, "position %d", pos)
		}
	}
	assert.Equal(t, 28, ownable)
	assert.Len(t, Railroads(), 4)
	assert.Len(t, Utilities(), 2)
}

func TestStreetMortgageIsHalfPrice(t *testing.T) {
	for pos := 0; pos < Size; pos++ {
		sp := Space(pos)
		if sp.Kind == models.SpaceKindProperty {
			assert.Equal(t, sp.Price/2, sp.MortgageValue, "position %d", pos)
		}
	}
}

func TestColorGroupSizes(t *testing.T) {
	sizes := map[models.ColorGroup]int{
		models.GroupBrown:     2,
		models.GroupLightBlue: 3,
		models.GroupPink:      3,
		models.GroupOrange:    3,
		models.GroupRed:       3,
		models.GroupYellow:    3,
		models.GroupGreen:     3,
		models.GroupDarkBlue:  2,
	}
	for group, want := range sizes {
		assert.Len(t, Group(group), want, "group %s", group)
	}

	assert.Equal(t, []int{1, 3}, Group(models.GroupBrown))
	assert.Equal(t, []int{37, 39}, Group(models.GroupDarkBlue))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(0))
	assert.True(t, Valid(39))
	assert.False(t, Valid(-1))
	assert.False(t, Valid(40))
}

func TestNextOfKind(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		kind     models.SpaceKind
		want     int
		passedGo bool
	}{
		{"railroad ahead", 7, models.SpaceKindRailroad, 15, false},
		{"from a railroad moves on", 15, models.SpaceKindRailroad, 25, false},
		{"last railroad wraps", 36, models.SpaceKindRailroad, 5, true},
		{"utility ahead", 7, models.SpaceKindUtility, 12, false},
		{"second utility ahead", 13, models.SpaceKindUtility, 28, false},
		{"utility past both wraps", 29, models.SpaceKindUtility, 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, passedGo := NextOfKind(tt.from, tt.kind)
			assert.Equal(t, tt.want, pos)
			assert.Equal(t, tt.passedGo, passedGo)
		})
	}
}

func TestLandmarkSpaces(t *testing.T) {
	assert.Equal(t, models.SpaceKindGo, Space(GoPosition).Kind)
	assert.Equal(t, models.SpaceKindJail, Space(JailPosition).Kind)
	assert.Equal(t, models.SpaceKindGoToJail, Space(GoToJailPosition).Kind)
	assert.Equal(t, 200, Space(4).TaxAmount)
	assert.Equal(t, 100, Space(38).TaxAmount)
	assert.Equal(t, "Boardwalk", Space(39).Name)
}
