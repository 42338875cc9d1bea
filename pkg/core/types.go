// pkg/core/types.go
package core

import "fmt"

// Shape discriminates the two unit variants. The zero value ShapeNone marks a
// unit that was never built by a constructor or was discarded by a merge.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeVehicle
	ShapeInfantry
)

// Valid reports whether s is one of the two unit variants
func (s Shape) Valid() bool { return s == ShapeVehicle || s == ShapeInfantry }

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeVehicle:
		return "Vehicle"
	case ShapeInfantry:
		return "Infantry"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// VehicleType is the subtype of a vehicle unit. The ordinal feeds the attack score.
type VehicleType int

const (
	Truck VehicleType = iota
	Mortar
	AntiAircraft
	ArmoredCar
	APC
	Artillery
	Tank
)

var vehicleTypeNames = [...]string{
	Truck:        "TRUCK",
	Mortar:       "MORTAR",
	AntiAircraft: "ANTIAIRCRAFT",
	ArmoredCar:   "ARMOREDCAR",
	APC:          "APC",
	Artillery:    "ARTILLERY",
	Tank:         "TANK",
}

// VehicleTypes returns every vehicle subtype in ordinal order.
func VehicleTypes() []VehicleType {
	return []VehicleType{Truck, Mortar, AntiAircraft, ArmoredCar, APC, Artillery, Tank}
}

// Valid reports whether t is one of the declared subtypes
func (t VehicleType) Valid() bool {
	return t >= Truck && t <= Tank
}

func (t VehicleType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("VehicleType(%d)", int(t))
	}
	return vehicleTypeNames[t]
}

// ParseVehicleType looks a subtype up by its upper-case name
func ParseVehicleType(name string) (VehicleType, bool) {
	for i, n := range vehicleTypeNames {
		if n == name {
			return VehicleType(i), true
		}
	}
	return 0, false
}

// InfantryType is the subtype of an infantry unit. The ordinal feeds the attack score.
type InfantryType int

const (
	Sniper InfantryType = iota
	AntiAircraftSquad
	MortarSquad
	Engineer
	SpecialForces
	RegularInfantry
)

var infantryTypeNames = [...]string{
	Sniper:            "SNIPER",
	AntiAircraftSquad: "ANTIAIRCRAFTSQUAD",
	MortarSquad:       "MORTARSQUAD",
	Engineer:          "ENGINEER",
	SpecialForces:     "SPECIALFORCES",
	RegularInfantry:   "REGULARINFANTRY",
}

// InfantryTypes returns every infantry subtype in ordinal order.
func InfantryTypes() []InfantryType {
	return []InfantryType{Sniper, AntiAircraftSquad, MortarSquad, Engineer, SpecialForces, RegularInfantry}
}

// Valid reports whether t is one of the declared subtypes
func (t InfantryType) Valid() bool {
	return t >= Sniper && t <= RegularInfantry
}

func (t InfantryType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("InfantryType(%d)", int(t))
	}
	return infantryTypeNames[t]
}

// ParseInfantryType looks a subtype up by its upper-case name
func ParseInfantryType(name string) (InfantryType, bool) {
	for i, n := range infantryTypeNames {
		if n == name {
			return InfantryType(i), true
		}
	}
	return 0, false
}
