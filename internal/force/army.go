// Package force builds the two opposing armies out of unit rosters and
// derives their aggregate ratings.
package force

import (
	"fmt"

	"github.com/hcmcampaign/hcmcampaign/internal/battlefield"
	"github.com/hcmcampaign/hcmcampaign/pkg/core"
)

// Rating ceilings
const (
	MaxLF  = 1000
	MaxEXP = 500
)

// Kind selects which side an army fights for
type Kind uint8

const (
	LiberationArmy Kind = iota
	ARVN
)

func (k Kind) String() string {
	switch k {
	case LiberationArmy:
		return "LiberationArmy"
	case ARVN:
		return "ARVN"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Army is a named force owning a UnitList. LF rates its vehicles, EXP its infantry.
type Army struct {
	kind        Kind
	name        string
	lf, exp     int
	units       *UnitList
	battleField *battlefield.BattleField
}

// NewArmy builds an army of the given kind. Every unit is inserted in order,
// so duplicates inside units merge, and the ratings are computed once.
// The army takes ownership of units.
func NewArmy(kind Kind, units []*core.Unit, name string, bf *battlefield.BattleField) *Army {
	a := &Army{
		kind:        kind,
		name:        name,
		units:       NewUnitList(len(units)),
		battleField: bf,
	}
	for _, u := range units {
		a.units.Insert(u)
	}
	a.RecomputeAggregates()
	return a
}

// NewLiberationArmy builds the liberation side
func NewLiberationArmy(units []*core.Unit, name string, bf *battlefield.BattleField) *Army {
	return NewArmy(LiberationArmy, units, name, bf)
}

// NewARVN builds the ARVN side
func NewARVN(units []*core.Unit, name string, bf *battlefield.BattleField) *Army {
	return NewArmy(ARVN, units, name, bf)
}

// RecomputeAggregates recalculates LF and EXP from scratch.
//
// Scoring infantry adjusts their quantities, so this is a strength-evolution
// step: calling it again may yield different ratings.
func (a *Army) RecomputeAggregates() {
	lf, exp := 0, 0
	for _, u := range a.units.units {
		switch u.Shape {
		case core.ShapeVehicle:
			lf += u.AttackScore()
		case core.ShapeInfantry:
			exp += u.AttackScore()
		}
	}
	a.lf = min(lf, MaxLF)
	a.exp = min(exp, MaxEXP)
}

// Fight engages enemy. No resolution rules are defined yet, so neither side
// is changed.
func (a *Army) Fight(enemy *Army, defense bool) {}

// Kind returns the side of the army
func (a *Army) Kind() Kind { return a.kind }

// Name returns the army's name
func (a *Army) Name() string { return a.name }

// LF returns the capped vehicle rating
func (a *Army) LF() int { return a.lf }

// EXP returns the capped infantry rating
func (a *Army) EXP() int { return a.exp }

// UnitList returns the owned unit list
func (a *Army) UnitList() *UnitList { return a.units }

// BattleField returns the battlefield the army was deployed on, possibly nil
func (a *Army) BattleField() *battlefield.BattleField { return a.battleField }

// String returns e.g. LiberationArmy[name=..,LF=..,EXP=..,UnitList[...]]
func (a *Army) String() string {
	return fmt.Sprintf("%s[name=%s,LF=%d,EXP=%d,%s]", a.kind, a.name, a.lf, a.exp, a.units)
}
