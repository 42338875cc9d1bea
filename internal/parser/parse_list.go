package parser

import (
	"errors"
	"strings"
)

var (
	errNoBrackets  = errors.New("expected a [...] list")
	errUnbalanced  = errors.New("unbalanced parentheses")
	errFieldCount  = errors.New("wrong number of fields")
	errMissingName = errors.New("missing unit name")
)

// SplitList splits a bracketed list literal such as "[(1,2),(3,4)]" into its
// top-level elements. Commas nested inside parentheses do not split, empty
// elements are dropped and each element is trimmed.
func SplitList(value string) ([]string, error) {
	body, err := bracketBody(value)
	if err != nil {
		return nil, err
	}
	return splitTopLevel(body)
}

// bracketBody returns the text between the first '[' and the last ']'
func bracketBody(value string) (string, error) {
	start := strings.IndexByte(value, '[')
	end := strings.LastIndexByte(value, ']')
	if start < 0 || end < start {
		return "", errNoBrackets
	}
	return value[start+1 : end], nil
}

// splitTopLevel splits s on commas at parenthesis depth 0
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth := 0
	last := 0

	flush := func(end int) {
		if tok := strings.TrimSpace(s[last:end]); tok != "" {
			parts = append(parts, tok)
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errUnbalanced
			}
		case ',':
			if depth == 0 {
				flush(i)
				last = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalanced
	}
	flush(len(s))

	return parts, nil
}
