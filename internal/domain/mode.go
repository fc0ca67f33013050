package domain

import "fmt"

// Mode is the report flavor a user has selected via /mode.
type Mode int

const (
	ModeGeneral Mode = iota
	ModeLegalInfo
	ModeReviews
	ModeSalaries
)

// String returns the wire name used inside callback payloads.
func (m Mode) String() string {
	switch m {
	case ModeGeneral:
		return "general"
	case ModeLegalInfo:
		return "legalinfo"
	case ModeReviews:
		return "reviews"
	case ModeSalaries:
		return "salaries"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a wire name back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "general":
		return ModeGeneral, nil
	case "legalinfo":
		return ModeLegalInfo, nil
	case "reviews":
		return ModeReviews, nil
	case "salaries":
		return ModeSalaries, nil
	default:
		return 0, fmt.Errorf("unsupported mode %q", s)
	}
}

// Modes lists all selectable modes in menu order.
func Modes() []Mode {
	return []Mode{ModeGeneral, ModeLegalInfo, ModeReviews, ModeSalaries}
}
