package models

import (
	"time"
)

// Report captures a single crowdsourced status submission. Only the
// latest report is folded into the branch; no history is kept.
type Report struct {
	ID        string          `json:"id"`
	BranchID  string          `json:"branchId"`
	Status    LiquidityStatus `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	UserID    string          `json:"userId"`
}
