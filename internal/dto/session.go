package dto

type NavigateRequest struct {
	View string `json:"view" validate:"required"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

type TabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

type AvailabilityRequest struct {
	Enabled bool `json:"enabled"`
}

type ReportTargetRequest struct {
	BranchID string `json:"branchId"`
}

// ToastView is the transient notification currently shown, if any.
type ToastView struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SessionView is the full client-visible session snapshot.
type SessionView struct {
	View           string     `json:"view"`
	Tab            string     `json:"tab"`
	SearchTerm     string     `json:"searchTerm"`
	SettledTerm    string     `json:"settledTerm"`
	Searching      bool       `json:"searching"`
	AvailableOnly  bool       `json:"availableOnly"`
	SelectedBankID string     `json:"selectedBankId,omitempty"`
	ReportBranchID string     `json:"reportBranchId,omitempty"`
	DarkTheme      bool       `json:"darkTheme"`
	Summary        string     `json:"summary,omitempty"`
	Analyzing      bool       `json:"analyzing"`
	Toast          *ToastView `json:"toast,omitempty"`
}
