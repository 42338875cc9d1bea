package campaign

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hcmcampaign/hcmcampaign/internal/battlefield"
	"github.com/hcmcampaign/hcmcampaign/internal/force"
)

// Summary is the machine-readable report of an assembled campaign
type Summary struct {
	Source     string         `yaml:"source,omitempty"`
	Rows       int            `yaml:"rows"`
	Cols       int            `yaml:"cols"`
	EventCode  int            `yaml:"event_code"`
	Terrain    map[string]int `yaml:"terrain"`
	Liberation ArmySummary    `yaml:"liberation"`
	ARVN       ArmySummary    `yaml:"arvn"`
}

// ArmySummary reports one side
type ArmySummary struct {
	Name     string        `yaml:"name"`
	Kind     string        `yaml:"kind"`
	LF       int           `yaml:"lf"`
	EXP      int           `yaml:"exp"`
	Vehicles int           `yaml:"vehicles"`
	Infantry int           `yaml:"infantry"`
	Units    []UnitSummary `yaml:"units"`
}

// UnitSummary reports one unit list entry. Score is the base score, so
// building a summary never adjusts infantry quantities.
type UnitSummary struct {
	Shape    string `yaml:"shape"`
	Type     string `yaml:"type"`
	Quantity int    `yaml:"quantity"`
	Weight   int    `yaml:"weight"`
	Position string `yaml:"position"`
	Score    int    `yaml:"score"`
}

// Summary builds the report of the campaign's current state
func (c *Campaign) Summary() Summary {
	terrain := make(map[string]int)
	for _, t := range battlefield.Terrains() {
		if n := c.battleField.Count(t); n > 0 {
			terrain[t.String()] = n
		}
	}

	return Summary{
		Source:     c.source,
		Rows:       c.battleField.Rows(),
		Cols:       c.battleField.Cols(),
		EventCode:  c.config.EventCode,
		Terrain:    terrain,
		Liberation: summarizeArmy(c.liberation),
		ARVN:       summarizeArmy(c.arvn),
	}
}

func summarizeArmy(a *force.Army) ArmySummary {
	ul := a.UnitList()
	s := ArmySummary{
		Name:     a.Name(),
		Kind:     a.Kind().String(),
		LF:       a.LF(),
		EXP:      a.EXP(),
		Vehicles: ul.CountVehicle(),
		Infantry: ul.CountInfantry(),
		Units:    make([]UnitSummary, 0, ul.Len()),
	}
	for _, u := range ul.Units() {
		s.Units = append(s.Units, UnitSummary{
			Shape:    u.Shape.String(),
			Type:     u.SubtypeName(),
			Quantity: u.Quantity,
			Weight:   u.Weight,
			Position: u.Pos.String(),
			Score:    u.BaseScore(),
		})
	}
	return s
}

// YAML encodes the summary
func (s Summary) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error encoding summary: %w", err)
	}
	return out, nil
}
