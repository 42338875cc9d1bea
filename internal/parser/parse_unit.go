package parser

import (
	"strconv"
	"strings"

	"github.com/hcmcampaign/hcmcampaign/pkg/core"
)

// Side tags used in UNIT_LIST entries. Anything other than SideLiberation is ARVN.
const (
	SideLiberation = 0
	SideARVN       = 1
)

// defaultUnitNames is the name table every parser starts with
func defaultUnitNames() map[string]core.UnitKey {
	return map[string]core.UnitKey{
		"TANK":            {Shape: core.ShapeVehicle, Subtype: int(core.Tank)},
		"REGULARINFANTRY": {Shape: core.ShapeInfantry, Subtype: int(core.RegularInfantry)},
	}
}

// allUnitNames maps every vehicle and infantry subtype name
func allUnitNames() map[string]core.UnitKey {
	names := make(map[string]core.UnitKey)
	for _, vt := range core.VehicleTypes() {
		names[vt.String()] = core.UnitKey{Shape: core.ShapeVehicle, Subtype: int(vt)}
	}
	for _, it := range core.InfantryTypes() {
		names[it.String()] = core.UnitKey{Shape: core.ShapeInfantry, Subtype: int(it)}
	}
	return names
}

// UnitEntry is one parsed UNIT_LIST element, before name resolution
type UnitEntry struct {
	Name     string
	Quantity int
	Weight   int
	Pos      core.Position
	Side     int
}

// ParseUnitEntry parses "NAME(quantity,weight,(row,col),side)"
func (p *Parser) ParseUnitEntry(entry string) (UnitEntry, error) {
	var ue UnitEntry

	entry = strings.TrimSpace(entry)
	open := strings.IndexByte(entry, '(')
	if open < 0 || !strings.HasSuffix(entry, ")") {
		return ue, formatErr(KeyUnitList, entry, errFieldCount)
	}

	ue.Name = strings.TrimSpace(entry[:open])
	if ue.Name == "" {
		return ue, formatErr(KeyUnitList, entry, errMissingName)
	}

	fields, err := splitTopLevel(entry[open+1 : len(entry)-1])
	if err != nil {
		return ue, formatErr(KeyUnitList, entry, err)
	}
	if len(fields) != 4 {
		return ue, formatErr(KeyUnitList, entry, errFieldCount)
	}

	ue.Quantity, err = strconv.Atoi(fields[0])
	if err != nil {
		return ue, formatErr(KeyUnitList, entry, err)
	}
	ue.Weight, err = strconv.Atoi(fields[1])
	if err != nil {
		return ue, formatErr(KeyUnitList, entry, err)
	}
	ue.Pos, err = core.ParsePosition(fields[2])
	if err != nil {
		return ue, formatErr(KeyUnitList, entry, err)
	}
	ue.Side, err = strconv.Atoi(fields[3])
	if err != nil {
		return ue, formatErr(KeyUnitList, entry, err)
	}

	return ue, nil
}

// buildUnit resolves an entry's name. It returns nil for names the parser does not know.
func (p *Parser) buildUnit(ue UnitEntry) *core.Unit {
	key, ok := p.unitNames[ue.Name]
	if !ok {
		return nil
	}
	if key.Shape == core.ShapeVehicle {
		return core.NewVehicle(ue.Quantity, ue.Weight, ue.Pos, core.VehicleType(key.Subtype))
	}
	return core.NewInfantry(ue.Quantity, ue.Weight, ue.Pos, core.InfantryType(key.Subtype))
}

// ParseUnitList parses a UNIT_LIST value into the two side rosters.
// Unknown unit names are skipped.
func (p *Parser) ParseUnitList(value string) (liberation, arvn []*core.Unit, err error) {
	elems, err := SplitList(value)
	if err != nil {
		return nil, nil, formatErr(KeyUnitList, value, err)
	}

	for _, e := range elems {
		ue, err := p.ParseUnitEntry(e)
		if err != nil {
			return nil, nil, err
		}

		u := p.buildUnit(ue)
		if u == nil {
			p.logger.Debug("Skipping unrecognized unit", "name", ue.Name, "entry", e)
			continue
		}

		if ue.Side == SideLiberation {
			liberation = append(liberation, u)
		} else {
			arvn = append(arvn, u)
		}
	}

	return liberation, arvn, nil
}
