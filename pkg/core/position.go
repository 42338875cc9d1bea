// pkg/core/position.go
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPosition is returned when a position literal is not of the form (row,col)
var ErrInvalidPosition = errors.New("invalid position literal")

// Position is a cell on the battlefield grid. Bounds are owned by the grid, not the type.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// NewPosition creates a Position at row r, column c
func NewPosition(r, c int) Position {
	return Position{Row: r, Col: c}
}

// ParsePosition parses the canonical "(row,col)" form. Surrounding whitespace
// is tolerated, as is whitespace around each number.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: row of %q: %v", ErrInvalidPosition, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: col of %q: %v", ErrInvalidPosition, s, err)
	}

	return Position{Row: r, Col: c}, nil
}

// String returns the canonical "(row,col)" form, with no spaces.
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// FormatPositions renders positions as "[(r,c),(r,c),...]"
func FormatPositions(ps []Position) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}
