// Package parser reads campaign configuration files into core.Configuration.
//
// The format is line oriented, one KEY=VALUE directive per line:
//
//	NUM_ROWS=10
//	ARRAY_FOREST=[(1,2),(3,4)]
//	UNIT_LIST=[TANK(5,2,(1,2),0),REGULARINFANTRY(5,2,(1,1),1)]
package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hcmcampaign/hcmcampaign/pkg/core"
)

// Configuration keys
const (
	KeyNumRows            = "NUM_ROWS"
	KeyNumCols            = "NUM_COLS"
	KeyEventCode          = "EVENT_CODE"
	KeyArrayForest        = "ARRAY_FOREST"
	KeyArrayRiver         = "ARRAY_RIVER"
	KeyArrayFortification = "ARRAY_FORTIFICATION"
	KeyArrayUrban         = "ARRAY_URBAN"
	KeyArraySpecialZone   = "ARRAY_SPECIAL_ZONE"
	KeyUnitList           = "UNIT_LIST"
)

var scalarKeys = []string{KeyNumRows, KeyNumCols, KeyEventCode}

// maxLineSize bounds a single directive; unit lists can get long
const maxLineSize = 1 << 20

// Option configures a Parser
type Option func(*Parser)

// WithStrictKeys makes a missing NUM_ROWS, NUM_COLS or EVENT_CODE an error
// instead of leaving the field at zero.
func WithStrictKeys() Option {
	return func(p *Parser) { p.strictKeys = true }
}

// WithAllUnitNames accepts every vehicle and infantry subtype name in
// UNIT_LIST, not only TANK and REGULARINFANTRY.
func WithAllUnitNames() Option {
	return func(p *Parser) {
		for name, key := range allUnitNames() {
			p.unitNames[name] = key
		}
	}
}

// WithUnitName maps a UNIT_LIST name onto a unit shape and subtype
func WithUnitName(name string, key core.UnitKey) Option {
	return func(p *Parser) { p.unitNames[name] = key }
}

// Parser turns configuration text into a core.Configuration.
// It has no dependencies beyond a logger.
type Parser struct {
	logger     *slog.Logger
	strictKeys bool
	unitNames  map[string]core.UnitKey
}

// NewParser creates a parser. A nil logger falls back to slog.Default().
func NewParser(logger *slog.Logger, opts ...Option) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Parser{
		logger:    logger,
		unitNames: defaultUnitNames(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile opens path and parses it
func (p *Parser) ParseFile(path string) (*core.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening configuration file: %w", err)
	}
	defer f.Close()

	cfg, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads directives from r until EOF. Blank lines, lines without '='
// and unknown keys are skipped. A repeated scalar key overwrites the earlier
// value; a repeated list key appends to it.
func (p *Parser) Parse(r io.Reader) (*core.Configuration, error) {
	cfg := &core.Configuration{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			p.logger.Debug("Skipping line without directive", "line", lineNo)
			continue
		}
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])

		if seen[key] {
			p.logger.Warn("Configuration key repeated", "key", key, "line", lineNo)
		}
		seen[key] = true

		if err := p.apply(cfg, key, value); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading configuration: %w", err)
	}

	if p.strictKeys {
		for _, key := range scalarKeys {
			if !seen[key] {
				return nil, &MissingKeyError{Key: key}
			}
		}
	}

	p.logger.Debug("Parsed configuration",
		"rows", cfg.NumRows,
		"cols", cfg.NumCols,
		"liberationUnits", len(cfg.LiberationUnits),
		"arvnUnits", len(cfg.ARVNUnits),
		"eventCode", cfg.EventCode)

	return cfg, nil
}

// apply stores one directive into cfg
func (p *Parser) apply(cfg *core.Configuration, key, value string) error {
	var err error

	switch key {
	case KeyNumRows:
		cfg.NumRows, err = parseInt(key, value)
	case KeyNumCols:
		cfg.NumCols, err = parseInt(key, value)
	case KeyEventCode:
		cfg.EventCode, err = parseInt(key, value)
	case KeyArrayForest:
		cfg.Forest, err = p.appendPositions(cfg.Forest, key, value)
	case KeyArrayRiver:
		cfg.River, err = p.appendPositions(cfg.River, key, value)
	case KeyArrayFortification:
		cfg.Fortification, err = p.appendPositions(cfg.Fortification, key, value)
	case KeyArrayUrban:
		cfg.Urban, err = p.appendPositions(cfg.Urban, key, value)
	case KeyArraySpecialZone:
		cfg.SpecialZone, err = p.appendPositions(cfg.SpecialZone, key, value)
	case KeyUnitList:
		var lib, arvn []*core.Unit
		lib, arvn, err = p.ParseUnitList(value)
		cfg.LiberationUnits = append(cfg.LiberationUnits, lib...)
		cfg.ARVNUnits = append(cfg.ARVNUnits, arvn...)
	default:
		p.logger.Debug("Skipping unknown configuration key", "key", key)
	}

	return err
}

func (p *Parser) appendPositions(dst []core.Position, key, value string) ([]core.Position, error) {
	ps, err := p.ParsePositionList(key, value)
	if err != nil {
		return dst, err
	}
	return append(dst, ps...), nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, formatErr(key, value, err)
	}
	return n, nil
}
