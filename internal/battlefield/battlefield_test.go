package battlefield

import (
	"testing"

	"github.com/hcmcampaign/hcmcampaign/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Extent(t *testing.T) {
	bf := New(10, 8, Overlays{})
	assert.Equal(t, 10, bf.Rows())
	assert.Equal(t, 8, bf.Cols())
	assert.Equal(t, "BattleField[n_rows=10,n_cols=8]", bf.String())
}

func TestInBounds(t *testing.T) {
	bf := New(3, 4, Overlays{})

	tests := []struct {
		pos  core.Position
		want bool
	}{
		{core.NewPosition(0, 0), true},
		{core.NewPosition(2, 3), true},
		{core.NewPosition(3, 0), false},
		{core.NewPosition(0, 4), false},
		{core.NewPosition(-1, 0), false},
		{core.NewPosition(0, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, bf.InBounds(tt.pos))
		})
	}
}

func TestTerrainAt(t *testing.T) {
	bf := New(5, 5, Overlays{
		Forest:      []core.Position{core.NewPosition(1, 1)},
		River:       []core.Position{core.NewPosition(2, 2), core.NewPosition(1, 1)},
		Urban:       []core.Position{core.NewPosition(4, 4)},
		SpecialZone: []core.Position{core.NewPosition(0, 3)},
	})

	tr, ok := bf.TerrainAt(core.NewPosition(2, 2))
	assert.True(t, ok)
	assert.Equal(t, River, tr)

	tr, ok = bf.TerrainAt(core.NewPosition(1, 1))
	assert.True(t, ok)
	assert.Equal(t, River, tr, "later overlay wins")

	tr, ok = bf.TerrainAt(core.NewPosition(0, 3))
	assert.True(t, ok)
	assert.Equal(t, "specialZone", tr.String())

	_, ok = bf.TerrainAt(core.NewPosition(3, 3))
	assert.False(t, ok)
}

func TestOverlaysFrom(t *testing.T) {
	cfg := &core.Configuration{
		Forest:        []core.Position{core.NewPosition(1, 2)},
		Fortification: []core.Position{core.NewPosition(3, 3)},
	}
	o := OverlaysFrom(cfg)
	assert.Equal(t, cfg.Forest, o.Forest)
	assert.Equal(t, cfg.Fortification, o.Fortification)
	assert.Empty(t, o.River)
}

func TestOverlaysFrom_DoesNotShareConfiguration(t *testing.T) {
	cfg := &core.Configuration{
		Forest: []core.Position{core.NewPosition(1, 2), core.NewPosition(3, 4)},
		Urban:  []core.Position{core.NewPosition(0, 0)},
	}
	o := OverlaysFrom(cfg)

	cfg.Forest[0] = core.NewPosition(9, 9)
	cfg.Urban = append(cfg.Urban[:0], core.NewPosition(2, 2))

	assert.Equal(t, []core.Position{core.NewPosition(1, 2), core.NewPosition(3, 4)}, o.Forest)
	assert.Equal(t, []core.Position{core.NewPosition(0, 0)}, o.Urban)

	bf := New(10, 10, o)
	terrain, ok := bf.TerrainAt(core.NewPosition(1, 2))
	require.True(t, ok)
	assert.Equal(t, Forest, terrain)
	_, ok = bf.TerrainAt(core.NewPosition(9, 9))
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	bf := New(5, 5, Overlays{
		Forest: []core.Position{core.NewPosition(0, 0), core.NewPosition(1, 1), core.NewPosition(1, 1)},
		River:  []core.Position{core.NewPosition(1, 1)},
	})

	assert.Equal(t, 1, bf.Count(Forest), "duplicates and overwritten cells do not count")
	assert.Equal(t, 1, bf.Count(River))
	assert.Equal(t, 0, bf.Count(Urban))
	assert.Len(t, Terrains(), 5)
}
