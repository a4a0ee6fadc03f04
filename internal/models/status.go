package models

// LiquidityStatus is the crowdsourced cash-availability state of a branch.
type LiquidityStatus string

const (
	StatusAvailable LiquidityStatus = "AVAILABLE"
	StatusCrowded   LiquidityStatus = "CROWDED"
	StatusEmpty     LiquidityStatus = "EMPTY"
	StatusUnknown   LiquidityStatus = "UNKNOWN"
)

// ParseStatus maps a wire value to a LiquidityStatus. Unrecognized input
// reports false and falls back to StatusUnknown.
func ParseStatus(s string) (LiquidityStatus, bool) {
	switch LiquidityStatus(s) {
	case StatusAvailable, StatusCrowded, StatusEmpty, StatusUnknown:
		return LiquidityStatus(s), true
	default:
		return StatusUnknown, false
	}
}

// Reportable reports whether users may submit this status. UNKNOWN is a
// display state only, never a report outcome.
func (s LiquidityStatus) Reportable() bool {
	return s == StatusAvailable || s == StatusCrowded || s == StatusEmpty
}
