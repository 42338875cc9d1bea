// Package battlefield holds the grid the two forces fight on.
package battlefield

import (
	"fmt"
	"slices"

	"github.com/hcmcampaign/hcmcampaign/pkg/core"
)

// Terrain is the overlay kind of a grid cell
type Terrain uint8

const (
	Forest Terrain = iota
	River
	Fortification
	Urban
	SpecialZone
)

func (t Terrain) String() string {
	switch t {
	case Forest:
		return "forest"
	case River:
		return "river"
	case Fortification:
		return "fortification"
	case Urban:
		return "urban"
	case SpecialZone:
		return "specialZone"
	default:
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
}

// Overlays groups the five terrain position sets of a configuration
type Overlays struct {
	Forest        []core.Position
	River         []core.Position
	Fortification []core.Position
	Urban         []core.Position
	SpecialZone   []core.Position
}

// OverlaysFrom copies the terrain sets out of a configuration. Later changes
// to cfg do not reach the returned overlays.
func OverlaysFrom(cfg *core.Configuration) Overlays {
	return Overlays{
		Forest:        slices.Clone(cfg.Forest),
		River:         slices.Clone(cfg.River),
		Fortification: slices.Clone(cfg.Fortification),
		Urban:         slices.Clone(cfg.Urban),
		SpecialZone:   slices.Clone(cfg.SpecialZone),
	}
}

// BattleField is a rows x cols grid with terrain overlays.
// When overlays overlap, the later kind in declaration order wins.
type BattleField struct {
	rows, cols int
	terrain    map[core.Position]Terrain
}

// New creates a battlefield of the given extent
func New(rows, cols int, o Overlays) *BattleField {
	bf := &BattleField{
		rows:    rows,
		cols:    cols,
		terrain: make(map[core.Position]Terrain),
	}
	bf.mark(Forest, o.Forest)
	bf.mark(River, o.River)
	bf.mark(Fortification, o.Fortification)
	bf.mark(Urban, o.Urban)
	bf.mark(SpecialZone, o.SpecialZone)
	return bf
}

func (bf *BattleField) mark(t Terrain, ps []core.Position) {
	for _, p := range ps {
		bf.terrain[p] = t
	}
}

// Rows returns the number of grid rows
func (bf *BattleField) Rows() int { return bf.rows }

// Cols returns the number of grid columns
func (bf *BattleField) Cols() int { return bf.cols }

// InBounds reports whether p lies inside the grid
func (bf *BattleField) InBounds(p core.Position) bool {
	return p.Row >= 0 && p.Row < bf.rows && p.Col >= 0 && p.Col < bf.cols
}

// TerrainAt returns the overlay at p, if any
func (bf *BattleField) TerrainAt(p core.Position) (Terrain, bool) {
	t, ok := bf.terrain[p]
	return t, ok
}

// Count returns how many cells carry terrain t
func (bf *BattleField) Count(t Terrain) int {
	n := 0
	for _, v := range bf.terrain {
		if v == t {
			n++
		}
	}
	return n
}

// Terrains lists every terrain kind in overlay order
func Terrains() []Terrain {
	return []Terrain{Forest, River, Fortification, Urban, SpecialZone}
}

// String returns BattleField[n_rows=R,n_cols=C]
func (bf *BattleField) String() string {
	return fmt.Sprintf("BattleField[n_rows=%d,n_cols=%d]", bf.rows, bf.cols)
}
