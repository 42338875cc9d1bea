// Package campaign assembles a battle from a configuration file: the
// battlefield, the liberation army and the ARVN.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/hcmcampaign/hcmcampaign/internal/battlefield"
	"github.com/hcmcampaign/hcmcampaign/internal/force"
	"github.com/hcmcampaign/hcmcampaign/internal/parser"
	"github.com/hcmcampaign/hcmcampaign/pkg/core"
)

// Army names used when assembling a campaign
const (
	LiberationName = "LIBERATIONARMY"
	ARVNName       = "ARVN"
)

// ErrNilConfiguration is returned when assembling from a nil configuration
var ErrNilConfiguration = errors.New("nil configuration")

type options struct {
	logger     *slog.Logger
	meter      metric.Meter
	parserOpts []parser.Option
}

// Option configures a Campaign
type Option func(*options)

// WithLogger sets the logger handed to the campaign and its parser
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMeter overrides the global OTel meter
func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// WithParserOptions forwards options to the configuration parser
func WithParserOptions(opts ...parser.Option) Option {
	return func(o *options) { o.parserOpts = append(o.parserOpts, opts...) }
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.meter == nil {
		o.meter = meter()
	}
	return o
}

// Campaign is a fully assembled battle. Both armies own their units; the
// configuration keeps only the grid and terrain once assembly is done.
type Campaign struct {
	source      string
	config      *core.Configuration
	configText  string
	battleField *battlefield.BattleField
	liberation  *force.Army
	arvn        *force.Army

	logger  *slog.Logger
	metrics *instruments
}

// New parses the configuration file at path and assembles the campaign.
func New(path string, opts ...Option) (*Campaign, error) {
	o := buildOptions(opts)

	cfg, err := parser.NewParser(o.logger, o.parserOpts...).ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading campaign: %w", err)
	}
	return assemble(path, cfg, o)
}

// FromReader parses configuration text from r and assembles the campaign.
// source names the input in logs and summaries.
func FromReader(source string, r io.Reader, opts ...Option) (*Campaign, error) {
	o := buildOptions(opts)

	cfg, err := parser.NewParser(o.logger, o.parserOpts...).Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error loading campaign %s: %w", source, err)
	}
	return assemble(source, cfg, o)
}

// FromConfiguration assembles a campaign from an already parsed
// configuration. The rosters are moved out of cfg.
func FromConfiguration(cfg *core.Configuration, opts ...Option) (*Campaign, error) {
	return assemble("", cfg, buildOptions(opts))
}

func assemble(source string, cfg *core.Configuration, o *options) (*Campaign, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}

	in, err := newInstruments(o.meter)
	if err != nil {
		return nil, err
	}

	c := &Campaign{
		source:     source,
		config:     cfg,
		configText: cfg.String(),
		logger:     o.logger,
		metrics:    in,
	}

	c.battleField = battlefield.New(cfg.NumRows, cfg.NumCols, battlefield.OverlaysFrom(cfg))

	libUnits := cfg.TakeLiberationUnits()
	arvnUnits := cfg.TakeARVNUnits()
	c.warnOutOfBounds(LiberationName, libUnits)
	c.warnOutOfBounds(ARVNName, arvnUnits)

	c.liberation = force.NewLiberationArmy(libUnits, LiberationName, c.battleField)
	c.arvn = force.NewARVN(arvnUnits, ARVNName, c.battleField)

	ctx := context.Background()
	in.recordArmy(ctx, c.liberation, len(libUnits))
	in.recordArmy(ctx, c.arvn, len(arvnUnits))

	c.logger.Info("Campaign assembled",
		"source", source,
		"battleField", c.battleField.String(),
		"eventCode", cfg.EventCode,
		"liberationLF", c.liberation.LF(),
		"liberationEXP", c.liberation.EXP(),
		"arvnLF", c.arvn.LF(),
		"arvnEXP", c.arvn.EXP())

	return c, nil
}

func (c *Campaign) warnOutOfBounds(side string, units []*core.Unit) {
	for _, u := range units {
		if !c.battleField.InBounds(u.Pos) {
			c.logger.Warn("Unit placed outside the battlefield",
				"side", side,
				"unit", u.String(),
				"battleField", c.battleField.String())
		}
	}
}

// Run plays the engagement: the liberation army attacks and the ARVN
// defends. Combat has no resolution rules yet, so ratings are unchanged.
func (c *Campaign) Run(ctx context.Context) {
	c.logger.Debug("Campaign run started", "source", c.source)

	c.liberation.Fight(c.arvn, false)
	c.metrics.engagements.Add(ctx, 1, sideAttr(c.liberation))

	c.arvn.Fight(c.liberation, true)
	c.metrics.engagements.Add(ctx, 1, sideAttr(c.arvn))

	c.logger.Info("Campaign run finished",
		"source", c.source,
		"liberation", c.liberation.String(),
		"arvn", c.arvn.String())
}

// PrintResult returns both armies' strings, liberation first, one per line.
func (c *Campaign) PrintResult() string {
	return c.liberation.String() + "\n" + c.arvn.String()
}

// Source returns the path or name the campaign was loaded from
func (c *Campaign) Source() string { return c.source }

// Configuration returns the parsed configuration. Its rosters are empty
// because the armies own the units.
func (c *Campaign) Configuration() *core.Configuration { return c.config }

// ConfigString returns the configuration rendered before assembly, rosters included
func (c *Campaign) ConfigString() string { return c.configText }

// BattleField returns the grid both armies are deployed on
func (c *Campaign) BattleField() *battlefield.BattleField { return c.battleField }

// Liberation returns the liberation army
func (c *Campaign) Liberation() *force.Army { return c.liberation }

// ARVN returns the ARVN army
func (c *Campaign) ARVN() *force.Army { return c.arvn }
