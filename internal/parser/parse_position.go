package parser

import (
	"github.com/hcmcampaign/hcmcampaign/pkg/core"
)

// ParsePositionList parses a terrain list value such as "[(1,2),(3,4)]"
func (p *Parser) ParsePositionList(key, value string) ([]core.Position, error) {
	elems, err := SplitList(value)
	if err != nil {
		return nil, formatErr(key, value, err)
	}

	positions := make([]core.Position, 0, len(elems))
	for _, e := range elems {
		pos, err := core.ParsePosition(e)
		if err != nil {
			return nil, formatErr(key, e, err)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
