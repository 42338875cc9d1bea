package force

import (
	"strconv"
	"strings"

	"github.com/hcmcampaign/hcmcampaign/pkg/core"
)

// UnitList is an ordered collection of units holding at most one entry per
// (shape, subtype). Non-merging vehicles go to the tail, non-merging infantry
// to the head.
type UnitList struct {
	capacity      int
	units         []*core.Unit
	countVehicle  int
	countInfantry int
}

// NewUnitList creates an empty list. Capacity is recorded but not enforced.
func NewUnitList(capacity int) *UnitList {
	return &UnitList{
		capacity: capacity,
		units:    make([]*core.Unit, 0, max(capacity, 0)),
	}
}

// Insert adds u to the list and takes ownership of it.
//
// If an entry with the same shape and subtype exists, u's quantity is added to
// that entry and u itself is discarded: it is zeroed, which leaves it with
// ShapeNone, so a reference kept by the caller carries no strength and is
// rejected by any later Insert. Otherwise u becomes a new entry. Inserting a
// unit the list already holds is a no-op.
// Insert reports false for a nil unit or one without a valid shape.
func (l *UnitList) Insert(u *core.Unit) bool {
	if u == nil || !u.Shape.Valid() {
		return false
	}

	if existing := l.find(u.Key()); existing != nil {
		if existing == u {
			return true
		}
		existing.Quantity += u.Quantity
		*u = core.Unit{}
		return true
	}

	switch u.Shape {
	case core.ShapeVehicle:
		l.units = append(l.units, u)
		l.countVehicle++
	case core.ShapeInfantry:
		l.units = append([]*core.Unit{u}, l.units...)
		l.countInfantry++
	}
	return true
}

func (l *UnitList) find(key core.UnitKey) *core.Unit {
	for _, u := range l.units {
		if u.Key() == key {
			return u
		}
	}
	return nil
}

// ContainsVehicle reports whether a vehicle entry of type t exists
func (l *UnitList) ContainsVehicle(t core.VehicleType) bool {
	return l.find(core.UnitKey{Shape: core.ShapeVehicle, Subtype: int(t)}) != nil
}

// ContainsInfantry reports whether an infantry entry of type t exists
func (l *UnitList) ContainsInfantry(t core.InfantryType) bool {
	return l.find(core.UnitKey{Shape: core.ShapeInfantry, Subtype: int(t)}) != nil
}

// CountVehicle returns the number of vehicle entries
func (l *UnitList) CountVehicle() int { return l.countVehicle }

// CountInfantry returns the number of infantry entries
func (l *UnitList) CountInfantry() int { return l.countInfantry }

// TotalCount returns the number of entries of both shapes
func (l *UnitList) TotalCount() int { return l.countVehicle + l.countInfantry }

// Capacity returns the capacity the list was created with
func (l *UnitList) Capacity() int { return l.capacity }

// Len returns the number of stored entries
func (l *UnitList) Len() int { return len(l.units) }

// UnitAt returns the entry at idx in traversal order
func (l *UnitList) UnitAt(idx int) (*core.Unit, bool) {
	if idx < 0 || idx >= len(l.units) {
		return nil, false
	}
	return l.units[idx], true
}

// Units returns the entries in traversal order. The slice is a copy; the
// units are not.
func (l *UnitList) Units() []*core.Unit {
	out := make([]*core.Unit, len(l.units))
	copy(out, l.units)
	return out
}

// RemoveIfAttackScoreLE5 drops every entry whose base score is at most 5.
// The pure base score is used so pruning never adjusts infantry quantities.
func (l *UnitList) RemoveIfAttackScoreLE5() int {
	kept := l.units[:0]
	removed := 0
	for _, u := range l.units {
		if u.BaseScore() > 5 {
			kept = append(kept, u)
			continue
		}
		removed++
		if u.IsVehicle() {
			l.countVehicle--
		} else {
			l.countInfantry--
		}
	}
	for i := len(kept); i < len(l.units); i++ {
		l.units[i] = nil
	}
	l.units = kept
	return removed
}

// String returns UnitList[count_vehicle=<n>;count_infantry=<m>;<u1>,<u2>,...]
func (l *UnitList) String() string {
	var b strings.Builder
	b.WriteString("UnitList[count_vehicle=")
	b.WriteString(strconv.Itoa(l.countVehicle))
	b.WriteString(";count_infantry=")
	b.WriteString(strconv.Itoa(l.countInfantry))
	b.WriteByte(';')
	for i, u := range l.units {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(u.String())
	}
	b.WriteByte(']')
	return b.String()
}
