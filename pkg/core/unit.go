// pkg/core/unit.go
package core

import (
	"fmt"
	"math"
	"strings"
)

// Scoring constants
const (
	vehicleTypeFactor  = 304
	vehicleMassDivisor = 30.0

	infantryTypeFactor    = 56
	specialForcesBonus    = 75
	numerologyOffset      = 1975
	numerologyGrowAbove   = 7
	numerologyShrinkBelow = 3
	growthFactor          = 1.2
	shrinkFactor          = 0.9
)

// UnitKey identifies a (shape, subtype) pair. A UnitList holds at most one entry per key.
type UnitKey struct {
	Shape   Shape
	Subtype int
}

// Unit is a stack of vehicles or infantry on the grid. Exactly one of
// VehicleType / InfantryType is meaningful, selected by Shape.
type Unit struct {
	Shape        Shape
	VehicleType  VehicleType
	InfantryType InfantryType
	Quantity     int
	Weight       int
	Pos          Position
}

// NewVehicle creates a vehicle unit
func NewVehicle(quantity, weight int, pos Position, t VehicleType) *Unit {
	return &Unit{
		Shape:       ShapeVehicle,
		VehicleType: t,
		Quantity:    quantity,
		Weight:      weight,
		Pos:         pos,
	}
}

// NewInfantry creates an infantry unit
func NewInfantry(quantity, weight int, pos Position, t InfantryType) *Unit {
	return &Unit{
		Shape:        ShapeInfantry,
		InfantryType: t,
		Quantity:     quantity,
		Weight:       weight,
		Pos:          pos,
	}
}

// IsVehicle reports whether the unit is a vehicle
func (u *Unit) IsVehicle() bool { return u.Shape == ShapeVehicle }

// IsInfantry reports whether the unit is infantry
func (u *Unit) IsInfantry() bool { return u.Shape == ShapeInfantry }

// Key returns the merge key of the unit
func (u *Unit) Key() UnitKey {
	switch u.Shape {
	case ShapeVehicle:
		return UnitKey{Shape: ShapeVehicle, Subtype: int(u.VehicleType)}
	case ShapeInfantry:
		return UnitKey{Shape: ShapeInfantry, Subtype: int(u.InfantryType)}
	default:
		return UnitKey{Shape: u.Shape}
	}
}

// BaseScore is the side-effect free part of the attack score. A unit without a
// valid shape scores 0.
func (u *Unit) BaseScore() int {
	switch u.Shape {
	case ShapeVehicle:
		return int(u.VehicleType)*vehicleTypeFactor +
			int(math.Ceil(float64(u.Quantity)*float64(u.Weight)/vehicleMassDivisor))
	case ShapeInfantry:
		score := int(u.InfantryType)*infantryTypeFactor + u.Quantity*u.Weight
		if u.InfantryType == SpecialForces && isPerfectSquare(u.Weight) {
			score += specialForcesBonus
		}
		return score
	default:
		return 0
	}
}

// NumerologyRoot reduces BaseScore()+1975 by repeated digit sums until it is below 10.
// Vehicles have no numerology and always report 0.
func (u *Unit) NumerologyRoot() int {
	if u.Shape != ShapeInfantry {
		return 0
	}
	return digitRoot(u.BaseScore() + numerologyOffset)
}

// ApplyNumerologyAdjustment grows or shrinks an infantry unit's quantity according
// to NumerologyRoot. It reports whether the quantity changed. No-op for vehicles.
func (u *Unit) ApplyNumerologyAdjustment() bool {
	if u.Shape != ShapeInfantry {
		return false
	}

	before := u.Quantity
	n := u.NumerologyRoot()
	if n > numerologyGrowAbove {
		u.Quantity = int(math.Ceil(float64(u.Quantity) * growthFactor))
	}
	if n < numerologyShrinkBelow {
		u.Quantity = int(math.Floor(float64(u.Quantity) * shrinkFactor))
	}
	return u.Quantity != before
}

// AttackScore returns the unit's attack score.
//
// For infantry this is NOT a pure query: the numerology adjustment is applied to
// Quantity first and the score is computed from the adjusted quantity, so two
// consecutive calls may return different values. Callers sharing a unit must
// serialize calls.
func (u *Unit) AttackScore() int {
	u.ApplyNumerologyAdjustment()
	return u.BaseScore()
}

// String returns the debug form, e.g. Vehicle[vehicleType=6,quantity=5,weight=2,pos=(1,2)].
// Subtypes are printed by ordinal.
func (u *Unit) String() string {
	switch u.Shape {
	case ShapeVehicle:
		return fmt.Sprintf("Vehicle[vehicleType=%d,quantity=%d,weight=%d,pos=%s]",
			int(u.VehicleType), u.Quantity, u.Weight, u.Pos)
	case ShapeInfantry:
		return fmt.Sprintf("Infantry[infantryType=%d,quantity=%d,weight=%d,pos=%s]",
			int(u.InfantryType), u.Quantity, u.Weight, u.Pos)
	default:
		return fmt.Sprintf("Unit[shape=%s]", u.Shape)
	}
}

// SubtypeName returns the upper-case name of the active subtype, e.g. TANK
func (u *Unit) SubtypeName() string {
	switch u.Shape {
	case ShapeVehicle:
		return u.VehicleType.String()
	case ShapeInfantry:
		return u.InfantryType.String()
	default:
		return ""
	}
}

func isPerfectSquare(n int) bool {
	if n < 0 {
		return false
	}
	r := int(math.Sqrt(float64(n)))
	return r*r == n
}

// digitRoot replaces n by the sum of its decimal digits until n < 10
func digitRoot(n int) int {
	for n >= 10 {
		s := 0
		for t := n; t != 0; t /= 10 {
			s += t % 10
		}
		n = s
	}
	return n
}

// FormatUnits renders units as "[u1,u2,...]"
func FormatUnits(units []*Unit) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, u := range units {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(u.String())
	}
	b.WriteByte(']')
	return b.String()
}
