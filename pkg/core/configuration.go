// pkg/core/configuration.go
package core

import (
	"strconv"
	"strings"
)

// Configuration is the parsed content of a campaign configuration file.
// It owns its unit rosters until they are taken by a force.
type Configuration struct {
	NumRows   int
	NumCols   int
	EventCode int

	Forest        []Position
	River         []Position
	Fortification []Position
	Urban         []Position
	SpecialZone   []Position

	LiberationUnits []*Unit
	ARVNUnits       []*Unit
}

// TakeLiberationUnits hands the liberation roster over to the caller and clears it.
func (c *Configuration) TakeLiberationUnits() []*Unit {
	units := c.LiberationUnits
	c.LiberationUnits = nil
	return units
}

// TakeARVNUnits hands the ARVN roster over to the caller and clears it.
func (c *Configuration) TakeARVNUnits() []*Unit {
	units := c.ARVNUnits
	c.ARVNUnits = nil
	return units
}

// String renders the configuration using the file's own key order:
// Configuration[num_rows=..,num_cols=..,arrayForest=[..],...,eventCode=..]
func (c *Configuration) String() string {
	var b strings.Builder
	b.WriteString("Configuration[")
	b.WriteString("num_rows=" + strconv.Itoa(c.NumRows))
	b.WriteString(",num_cols=" + strconv.Itoa(c.NumCols))
	b.WriteString(",arrayForest=" + FormatPositions(c.Forest))
	b.WriteString(",arrayRiver=" + FormatPositions(c.River))
	b.WriteString(",arrayFortification=" + FormatPositions(c.Fortification))
	b.WriteString(",arrayUrban=" + FormatPositions(c.Urban))
	b.WriteString(",arraySpecialZone=" + FormatPositions(c.SpecialZone))
	b.WriteString(",liberationUnits=" + FormatUnits(c.LiberationUnits))
	b.WriteString(",ARVNUnits=" + FormatUnits(c.ARVNUnits))
	b.WriteString(",eventCode=" + strconv.Itoa(c.EventCode))
	b.WriteByte(']')
	return b.String()
}
