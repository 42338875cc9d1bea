package parser

import (
	"testing"

	"github.com/hcmcampaign/hcmcampaign/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitEntry(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name  string
		input string
		want  UnitEntry
	}{
		{
			name:  "liberation tank",
			input: "TANK(5,2,(1,2),0)",
			want:  UnitEntry{Name: "TANK", Quantity: 5, Weight: 2, Pos: core.NewPosition(1, 2), Side: SideLiberation},
		},
		{
			name:  "side is the last field, not the column",
			input: "REGULARINFANTRY(5,2,(3,9),1)",
			want:  UnitEntry{Name: "REGULARINFANTRY", Quantity: 5, Weight: 2, Pos: core.NewPosition(3, 9), Side: SideARVN},
		},
		{
			name:  "whitespace",
			input: " TANK ( 5 , 2 , ( 1 , 2 ) , 0 ) ",
			want:  UnitEntry{Name: "TANK", Quantity: 5, Weight: 2, Pos: core.NewPosition(1, 2), Side: 0},
		},
		{
			name:  "negative values",
			input: "SNIPER(-1,-4,(-2,3),7)",
			want:  UnitEntry{Name: "SNIPER", Quantity: -1, Weight: -4, Pos: core.NewPosition(-2, 3), Side: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseUnitEntry(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnitEntry_Errors(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name  string
		input string
	}{
		{"no fields", "TANK"},
		{"missing name", "(5,2,(1,2),0)"},
		{"three fields", "TANK(5,2,(1,2))"},
		{"five fields", "TANK(5,2,(1,2),0,9)"},
		{"bad quantity", "TANK(x,2,(1,2),0)"},
		{"bad weight", "TANK(5,y,(1,2),0)"},
		{"bad position", "TANK(5,2,(1;2),0)"},
		{"bad side", "TANK(5,2,(1,2),z)"},
		{"unbalanced", "TANK(5,2,(1,2,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseUnitEntry(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, KeyUnitList, fe.Key)
		})
	}
}

func TestParseUnitList_Routing(t *testing.T) {
	lib, arvn, err := newTestParser().ParseUnitList(
		"[TANK(5,2,(1,2),0),TANK(5,2,(3,2),1),REGULARINFANTRY(5,2,(1,1),1),SNIPER(1,1,(0,0),0)]")
	require.NoError(t, err)

	require.Len(t, lib, 1)
	assert.Equal(t, core.NewVehicle(5, 2, core.NewPosition(1, 2), core.Tank), lib[0])

	require.Len(t, arvn, 2)
	assert.Equal(t, core.NewVehicle(5, 2, core.NewPosition(3, 2), core.Tank), arvn[0])
	assert.Equal(t, core.NewInfantry(5, 2, core.NewPosition(1, 1), core.RegularInfantry), arvn[1])
}

func TestParseUnitList_AllUnitNames(t *testing.T) {
	p := newTestParser(WithAllUnitNames())

	lib, arvn, err := p.ParseUnitList("[SNIPER(1,1,(0,0),0),APC(2,3,(1,1),1),SPECIALFORCES(2,9,(2,2),0)]")
	require.NoError(t, err)

	require.Len(t, lib, 2)
	assert.Equal(t, core.NewInfantry(1, 1, core.NewPosition(0, 0), core.Sniper), lib[0])
	assert.Equal(t, core.NewInfantry(2, 9, core.NewPosition(2, 2), core.SpecialForces), lib[1])
	require.Len(t, arvn, 1)
	assert.Equal(t, core.NewVehicle(2, 3, core.NewPosition(1, 1), core.APC), arvn[0])
}

func TestParseUnitList_CustomName(t *testing.T) {
	p := newTestParser(WithUnitName("HUEY", core.UnitKey{Shape: core.ShapeVehicle, Subtype: int(core.ArmoredCar)}))

	lib, _, err := p.ParseUnitList("[HUEY(4,4,(0,1),0)]")
	require.NoError(t, err)
	require.Len(t, lib, 1)
	assert.Equal(t, core.ArmoredCar, lib[0].VehicleType)
	assert.True(t, lib[0].IsVehicle())
}

func TestParseUnitList_Empty(t *testing.T) {
	lib, arvn, err := newTestParser().ParseUnitList("[]")
	require.NoError(t, err)
	assert.Empty(t, lib)
	assert.Empty(t, arvn)
}

func TestParsePositionList(t *testing.T) {
	p := newTestParser()

	got, err := p.ParsePositionList(KeyArrayRiver, "[(0,0), (2,-1)]")
	require.NoError(t, err)
	assert.Equal(t, []core.Position{core.NewPosition(0, 0), core.NewPosition(2, -1)}, got)

	_, err = p.ParsePositionList(KeyArrayRiver, "[(0,0),(1)]")
	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KeyArrayRiver, fe.Key)
	assert.Equal(t, "(1)", fe.Text)
	assert.ErrorIs(t, err, core.ErrInvalidPosition)
}
