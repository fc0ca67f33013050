// Package payload encodes and decodes inline-button callback data.
//
// Two payload forms exist on the wire:
//
//	mode-<mode>-<userID>   mode change, e.g. "mode-general-333"
//	check-<userID>-<tin>   report drill-down, e.g. "check-333-7743181857"
//
// The embedded user id is the id of the user the button was built
// for, so a later callback can be checked against the actual sender.
package payload

import (
	"fmt"
	"strconv"
	"strings"

	"inncheck/internal/domain"
)

// Kind tags the payload variant.
type Kind int

const (
	KindModeChange Kind = iota
	KindCheck
)

// Payload is a decoded callback payload.
type Payload struct {
	Kind   Kind
	Mode   domain.Mode // KindModeChange only
	UserID int64
	Tin    int64 // KindCheck only
}

// ForModeChange builds a mode-change payload for one user.
func ForModeChange(m domain.Mode, userID int64) string {
	return fmt.Sprintf("mode-%s-%d", m, userID)
}

// ForCheck builds a drill-down payload for one user and company.
func ForCheck(userID, tin int64) string {
	return fmt.Sprintf("check-%d-%d", userID, tin)
}

// Parse decodes a callback payload. Payloads reach this function only
// from buttons this bot built, so a malformed one is a programming
// error surfaced to the caller, never silently ignored.
func Parse(s string) (Payload, error) {
	switch {
	case strings.HasPrefix(s, "mode-"):
		rest := s[len("mode-"):]
		i := strings.LastIndexByte(rest, '-')
		if i < 0 {
			return Payload{}, fmt.Errorf("malformed mode payload %q", s)
		}
		userID, err := strconv.ParseInt(rest[i+1:], 10, 64)
		if err != nil {
			return Payload{}, fmt.Errorf("malformed mode payload %q: %w", s, err)
		}
		mode, err := domain.ParseMode(rest[:i])
		if err != nil {
			return Payload{}, fmt.Errorf("malformed mode payload %q: %w", s, err)
		}
		return Payload{Kind: KindModeChange, Mode: mode, UserID: userID}, nil

	case strings.HasPrefix(s, "check-"):
		rest := s[len("check-"):]
		userPart, tinPart, ok := strings.Cut(rest, "-")
		if !ok {
			return Payload{}, fmt.Errorf("malformed check payload %q", s)
		}
		userID, err := strconv.ParseInt(userPart, 10, 64)
		if err != nil {
			return Payload{}, fmt.Errorf("malformed check payload %q: %w", s, err)
		}
		tin, err := strconv.ParseInt(tinPart, 10, 64)
		if err != nil {
			return Payload{}, fmt.Errorf("malformed check payload %q: %w", s, err)
		}
		return Payload{Kind: KindCheck, UserID: userID, Tin: tin}, nil

	default:
		return Payload{}, fmt.Errorf("unknown payload %q", s)
	}
}
