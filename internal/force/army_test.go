package force

import (
	"testing"

	"github.com/hcmcampaign/hcmcampaign/internal/battlefield"
	"github.com/hcmcampaign/hcmcampaign/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArmy_MergesInitialRoster(t *testing.T) {
	units := []*core.Unit{
		core.NewVehicle(3, 10, origin, core.Truck),
		core.NewVehicle(4, 20, origin, core.Truck),
	}
	a := NewLiberationArmy(units, "LIBERATIONARMY", nil)

	assert.Equal(t, 1, a.UnitList().CountVehicle())
	assert.Equal(t, 4, a.UnitList().Capacity())
	u, ok := a.UnitList().UnitAt(0)
	require.True(t, ok)
	assert.Equal(t, 7, u.Quantity)
	// ceil(7*10/30) = 3
	assert.Equal(t, 3, a.LF())
	assert.Equal(t, 0, a.EXP())
}

func TestNewArmy_Aggregates(t *testing.T) {
	units := []*core.Unit{
		core.NewVehicle(30, 1, origin, core.Truck),    // 1
		core.NewVehicle(3, 10, origin, core.Mortar),   // 304 + 1
		core.NewInfantry(1, 1, origin, core.Sniper),   // 1
		core.NewInfantry(2, 3, origin, core.Engineer), // 168 + 6
	}
	a := NewARVN(units, "ARVN", nil)

	assert.Equal(t, 306, a.LF())
	assert.Equal(t, 175, a.EXP())
	assert.Equal(t, ARVN, a.Kind())
	assert.Equal(t, "ARVN", a.Name())
}

func TestNewArmy_LFCapped(t *testing.T) {
	units := []*core.Unit{
		core.NewVehicle(5, 2, origin, core.Tank),        // 1825
		core.NewVehicle(10, 30, origin, core.Artillery), // 1530
	}
	a := NewLiberationArmy(units, "L", nil)
	assert.Equal(t, MaxLF, a.LF())
}

func TestNewArmy_EXPCapped(t *testing.T) {
	units := []*core.Unit{
		core.NewInfantry(100, 10, origin, core.RegularInfantry), // 1280
	}
	a := NewLiberationArmy(units, "L", nil)
	assert.Equal(t, MaxEXP, a.EXP())
	assert.Equal(t, 0, a.LF())
}

func TestRecomputeAggregates_EvolvesInfantry(t *testing.T) {
	sniper := core.NewInfantry(4, 1, origin, core.Sniper)
	a := NewLiberationArmy([]*core.Unit{sniper}, "L", nil)

	// construction already scored once: 4 -> 5
	assert.Equal(t, 5, a.EXP())
	assert.Equal(t, 5, sniper.Quantity)

	a.RecomputeAggregates()
	assert.Equal(t, 6, a.EXP())

	a.RecomputeAggregates()
	assert.Equal(t, 5, a.EXP())
}

func TestRecomputeAggregates_VehiclesStable(t *testing.T) {
	a := NewARVN([]*core.Unit{core.NewVehicle(3, 10, origin, core.Mortar)}, "A", nil)
	first := a.LF()
	a.RecomputeAggregates()
	a.RecomputeAggregates()
	assert.Equal(t, first, a.LF())
}

func TestArmyString(t *testing.T) {
	units := []*core.Unit{
		core.NewVehicle(3, 10, origin, core.Truck),
		core.NewVehicle(4, 20, origin, core.Truck),
	}

	lib := NewLiberationArmy(units, "LIBERATIONARMY", nil)
	assert.Equal(t,
		"LiberationArmy[name=LIBERATIONARMY,LF=3,EXP=0,"+
			"UnitList[count_vehicle=1;count_infantry=0;Vehicle[vehicleType=0,quantity=7,weight=10,pos=(0,0)]]]",
		lib.String())

	arvn := NewARVN(nil, "ARVN", nil)
	assert.Equal(t, "ARVN[name=ARVN,LF=0,EXP=0,UnitList[count_vehicle=0;count_infantry=0;]]", arvn.String())
}

func TestFight_LeavesForcesUnchanged(t *testing.T) {
	bf := battlefield.New(5, 5, battlefield.Overlays{})
	lib := NewLiberationArmy([]*core.Unit{core.NewVehicle(5, 2, origin, core.Tank)}, "L", bf)
	arvn := NewARVN([]*core.Unit{core.NewInfantry(1, 1, origin, core.Sniper)}, "A", bf)
	before := lib.String() + arvn.String()

	lib.Fight(arvn, false)
	arvn.Fight(lib, true)

	assert.Equal(t, before, lib.String()+arvn.String())
	assert.Same(t, bf, lib.BattleField())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "LiberationArmy", LiberationArmy.String())
	assert.Equal(t, "ARVN", ARVN.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
