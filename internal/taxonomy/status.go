// Package taxonomy maps liquidity statuses to their display metadata and
// derived report values. All functions are total over the status enum;
// anything unrecognized classifies as UNKNOWN.
package taxonomy

import (
	"github.com/dalili-app/dalili-backend/internal/models"
)

type ColorToken string

const (
	ColorGreen  ColorToken = "green"
	ColorYellow ColorToken = "yellow"
	ColorRed    ColorToken = "red"
	ColorGray   ColorToken = "gray"
)

type Icon string

const (
	IconCheck    Icon = "check"
	IconCrowd    Icon = "crowd"
	IconBanknote Icon = "banknote-off"
	IconQuestion Icon = "question"
)

// Classification is the display metadata for a liquidity status.
type Classification struct {
	Label      string     `json:"label"`
	ColorToken ColorToken `json:"colorToken"`
	ColorHex   string     `json:"colorHex"`
	Icon       Icon       `json:"icon"`
}

var classifications = map[models.LiquidityStatus]Classification{
	models.StatusAvailable: {
		Label:      "سيولة متوفرة",
		ColorToken: ColorGreen,
		ColorHex:   "#22c55e",
		Icon:       IconCheck,
	},
	models.StatusCrowded: {
		Label:      "مزدحم",
		ColorToken: ColorYellow,
		ColorHex:   "#eab308",
		Icon:       IconCrowd,
	},
	models.StatusEmpty: {
		Label:      "لا توجد سيولة",
		ColorToken: ColorRed,
		ColorHex:   "#ef4444",
		Icon:       IconBanknote,
	},
	models.StatusUnknown: {
		Label:      "غير معروف",
		ColorToken: ColorGray,
		ColorHex:   "#9ca3af",
		Icon:       IconQuestion,
	},
}

// Classify returns the display metadata for a status. Total: an
// unrecognized status gets the UNKNOWN classification.
func Classify(status models.LiquidityStatus) Classification {
	if c, ok := classifications[status]; ok {
		return c
	}
	return classifications[models.StatusUnknown]
}

// CrowdLevelFor derives the crowd level a report sets for its status.
func CrowdLevelFor(status models.LiquidityStatus) int {
	switch status {
	case models.StatusAvailable:
		return 40
	case models.StatusCrowded:
		return 90
	default:
		return 0
	}
}
