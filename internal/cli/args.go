package cli

import (
	"strconv"
	"strings"
)

// flagKind tells NormalizeArgs how to treat a recognized flag's value.
type flagKind int

const (
	kindString flagKind = iota
	kindNumber
	kindBool
)

var knownFlags = map[string]flagKind{
	"primitive":  kindNumber,
	"cpuid":      kindNumber,
	"seed":       kindNumber,
	"iterations": kindNumber,
	"positions":  kindNumber,
	"bitdepth":   kindNumber,
	"vector":     kindBool,
	"asm":        kindBool,
	"config":     kindString,
	"log-level":  kindString,
	"report":     kindString,
}

// NormalizeArgs rewrites a raw argument vector into flags cobra can parse.
//
// Arguments after argv[0] are consumed strictly as "--name value" pairs.
// A pair whose name is not recognized is dropped, and a trailing argument
// without a partner is ignored. Numeric values are reduced to their
// leading integer, so "abc" becomes 0 and "12x" becomes 12.
func NormalizeArgs(argv []string) []string {
	out := []string{}
	for i := 1; i < len(argv)-1; i += 2 {
		name, ok := strings.CutPrefix(argv[i], "--")
		if !ok {
			continue
		}
		kind, ok := knownFlags[name]
		if !ok {
			continue
		}

		value := argv[i+1]
		if kind == kindNumber {
			value = strconv.Itoa(atoi(value))
		}
		out = append(out, "--"+name+"="+value)
	}
	return out
}

// atoi parses an optional sign and the digits that follow it, ignoring
// leading whitespace and anything after the digits.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
