package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"positions", "[(1,2),(3,4)]", []string{"(1,2)", "(3,4)"}},
		{"whitespace", "[ (1, 2) ,  (3,4) ]", []string{"(1, 2)", "(3,4)"}},
		{"empty", "[]", nil},
		{"empty elements dropped", "[(1,2),,(3,4),]", []string{"(1,2)", "(3,4)"}},
		{"nested units", "[TANK(5,2,(1,2),0),REGULARINFANTRY(5,2,(1,1),1)]",
			[]string{"TANK(5,2,(1,2),0)", "REGULARINFANTRY(5,2,(1,1),1)"}},
		{"single", "[(0,0)]", []string{"(0,0)"}},
		{"text around brackets", "  [(7,8)]  ", []string{"(7,8)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitList(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitList_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"no brackets", "(1,2),(3,4)", errNoBrackets},
		{"reversed brackets", "](1,2)[", errNoBrackets},
		{"unclosed paren", "[(1,2),(3,4]", errUnbalanced},
		{"extra close", "[(1,2)),(3,4)]", errUnbalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitList(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	got, err := splitTopLevel("5,2,(1,2),0")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "2", "(1,2)", "0"}, got)
}
