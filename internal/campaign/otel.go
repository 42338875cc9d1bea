package campaign

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hcmcampaign/hcmcampaign/internal/force"
)

const instrumentationName = "github.com/hcmcampaign/hcmcampaign/internal/campaign"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// instruments records campaign assembly and run statistics
type instruments struct {
	unitsLoaded metric.Int64Counter
	unitsMerged metric.Int64Counter
	engagements metric.Int64Counter
	lf          metric.Int64Histogram
	exp         metric.Int64Histogram
}

func newInstruments(m metric.Meter) (*instruments, error) {
	var (
		in  instruments
		err error
	)

	in.unitsLoaded, err = m.Int64Counter(
		"campaign.units.loaded",
		metric.WithDescription("Units read from the configuration roster"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating units loaded counter: %w", err)
	}

	in.unitsMerged, err = m.Int64Counter(
		"campaign.units.merged",
		metric.WithDescription("Roster units folded into an existing entry of the same kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating units merged counter: %w", err)
	}

	in.engagements, err = m.Int64Counter(
		"campaign.engagements",
		metric.WithDescription("Fight calls made while running the campaign"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating engagements counter: %w", err)
	}

	in.lf, err = m.Int64Histogram(
		"campaign.army.lf",
		metric.WithDescription("Vehicle rating of an army after assembly"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating LF histogram: %w", err)
	}

	in.exp, err = m.Int64Histogram(
		"campaign.army.exp",
		metric.WithDescription("Infantry rating of an army after assembly"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating EXP histogram: %w", err)
	}

	return &in, nil
}

func sideAttr(a *force.Army) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("side", a.Kind().String()))
}

func (in *instruments) recordArmy(ctx context.Context, a *force.Army, rosterSize int) {
	side := sideAttr(a)
	in.unitsLoaded.Add(ctx, int64(rosterSize), side)
	in.unitsMerged.Add(ctx, int64(rosterSize-a.UnitList().Len()), side)
	in.lf.Record(ctx, int64(a.LF()), side)
	in.exp.Record(ctx, int64(a.EXP()), side)
}
