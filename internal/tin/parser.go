package tin

import (
	"strconv"
	"strings"
)

// TIN of a Russian legal entity is a sequence of exactly 10 digits.
const (
	minTin = 1_000_000_000
	maxTin = 9_999_999_999
)

// Valid reports whether a number is a well-formed legal entity TIN.
func Valid(tin int64) bool {
	return tin >= minTin && tin <= maxTin
}

// Parser extracts taxpayer ids from /check commands and check-
// callback payloads. The bot name is needed to strip an optional
// @mention after the command.
type Parser struct {
	botName string
}

// NewParser creates a parser for the given registered bot name.
func NewParser(botName string) *Parser {
	return &Parser{botName: botName}
}

// TryParse extracts a TIN from raw command text. It returns false for
// anything that is not a recognized prefix followed by a 10-digit
// number: extra digits, non-digit characters, out-of-range values,
// an unknown @mention.
func (p *Parser) TryParse(raw string) (int64, bool) {
	var rest string
	switch {
	case strings.HasPrefix(raw, "/check"):
		rest = raw[len("/check"):]
	case strings.HasPrefix(raw, "check-"):
		rest = raw[len("check-"):]
	default:
		return 0, false
	}

	if rest == "" {
		return 0, false
	}

	if rest[0] == '@' {
		if !strings.HasPrefix(rest[1:], p.botName) {
			return 0, false
		}
		rest = rest[1+len(p.botName):]
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return 0, false
	}

	tin, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || !Valid(tin) {
		return 0, false
	}
	return tin, true
}
