package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// noKey is how a keyless element is printed.
const noKey = "<none>"

// keySelector extracts a key from a line and reports whether it has one.
type keySelector func(line string) (string, bool)

// parseKey understands "line", "length" and "field:N" (1-based, whitespace
// separated). A blank line has no line key; a line with fewer than N fields
// has no field key.
func parseKey(spec string) (keySelector, error) {
	switch spec {
	case "line":
		return func(line string) (string, bool) {
			return line, strings.TrimSpace(line) != ""
		}, nil
	case "length":
		return func(line string) (string, bool) {
			return strconv.Itoa(utf8.RuneCountInString(line)), true
		}, nil
	}

	rest, ok := strings.CutPrefix(spec, "field:")
	if !ok {
		return nil, fmt.Errorf("unknown key %q: want line, length or field:N", spec)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid field number in key %q", spec)
	}
	return func(line string) (string, bool) {
		fields := strings.Fields(line)
		if len(fields) < n {
			return "", false
		}
		return fields[n-1], true
	}, nil
}
