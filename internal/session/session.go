// Package session keeps the per-client UI state the server is
// authoritative for: the active screen, search and filter inputs, the
// selected bank, the report target, the toast, and the map surface.
package session

import (
	"sync"
	"time"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/mapview"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/notify"
	"github.com/dalili-app/dalili-backend/pkg/debounce"
)

const (
	// SplashDuration is how long the splash screen stays up before the
	// client is moved to the auth screen.
	SplashDuration = 3 * time.Second

	// SearchDebounce is the quiet window applied to search input before
	// it becomes effective for filtering.
	SearchDebounce = 500 * time.Millisecond
)

type Session struct {
	mu sync.Mutex

	id   string
	view models.ViewState

	tab            models.HomeTab
	availableOnly  bool
	selectedBankID string
	reportBranchID string
	darkTheme      bool
	summary        string
	analyzing      bool

	search *debounce.Debouncer[string]
	splash *time.Timer
	closed bool

	Toasts *notify.Center
	Map    *mapview.Synchronizer
}

// New creates a session on the splash screen. splashDelay and
// searchWindow exist so tests can shrink the timers; zero values take
// the production defaults.
func New(id string, splashDelay, searchWindow time.Duration) *Session {
	if splashDelay <= 0 {
		splashDelay = SplashDuration
	}
	if searchWindow <= 0 {
		searchWindow = SearchDebounce
	}

	s := &Session{
		id:     id,
		view:   models.ViewSplash,
		tab:    models.TabAll,
		search: debounce.New[string](searchWindow, nil),
		Toasts: notify.NewCenter(notify.DefaultTTL),
		Map:    mapview.New(),
	}
	s.splash = time.AfterFunc(splashDelay, s.finishSplash)
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) finishSplash() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.view != models.ViewSplash {
		return
	}
	s.view = models.ViewAuth
}

// Authenticate moves the client to the home screen. Login and guest
// entry behave identically.
func (s *Session) Authenticate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.splash != nil {
		s.splash.Stop()
		s.splash = nil
	}
	s.view = models.ViewHome
}

// Navigate switches to the given screen. Navigating home drops the
// bank selection, matching the bottom navigation behavior.
func (s *Session) Navigate(view models.ViewState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	switch view {
	case models.ViewHome:
		s.selectedBankID = ""
		s.summary = ""
	case models.ViewMap, models.ViewAddData:
	default:
		return false
	}
	s.view = view
	return true
}

// SelectBank opens the bank details screen and resets any analysis
// from a previously selected bank.
func (s *Session) SelectBank(bankID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.selectedBankID = bankID
	s.summary = ""
	s.analyzing = false
	s.view = models.ViewBankDetails
}

// Back walks one screen up. Details, map, and add-data all return
// home; anywhere else it is a no-op.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.view {
	case models.ViewBankDetails:
		s.selectedBankID = ""
		s.summary = ""
		s.view = models.ViewHome
	case models.ViewMap, models.ViewAddData:
		s.view = models.ViewHome
	}
}

func (s *Session) SetTab(tab models.HomeTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
}

// SetSearch records raw search input. The term only becomes effective
// after the debounce window passes without further input.
func (s *Session) SetSearch(term string) {
	s.search.Set(term)
}

func (s *Session) SetAvailableOnly(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availableOnly = enabled
}

// SetReportTarget opens the report sheet for a branch. An empty id
// closes it.
func (s *Session) SetReportTarget(branchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reportBranchID = branchID
}

func (s *Session) ToggleTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkTheme = !s.darkTheme
	return s.darkTheme
}

// SetAnalyzing marks a summary request in flight so the client can
// render the loading state.
func (s *Session) SetAnalyzing(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzing = v
}

// SetSummary stores the analysis text for the currently selected bank.
func (s *Session) SetSummary(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = text
	s.analyzing = false
}

func (s *Session) SelectedBankID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedBankID
}

func (s *Session) ReportBranchID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reportBranchID
}

// EffectiveSearch returns the settled term used for filtering.
func (s *Session) EffectiveSearch() string {
	return s.search.Settled()
}

func (s *Session) Tab() models.HomeTab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

func (s *Session) AvailableOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableOnly
}

// Snapshot renders the client-visible session state.
func (s *Session) Snapshot() dto.SessionView {
	s.mu.Lock()
	view := dto.SessionView{
		View:           string(s.view),
		Tab:            string(s.tab),
		AvailableOnly:  s.availableOnly,
		SelectedBankID: s.selectedBankID,
		ReportBranchID: s.reportBranchID,
		DarkTheme:      s.darkTheme,
		Summary:        s.summary,
		Analyzing:      s.analyzing,
	}
	s.mu.Unlock()

	view.SearchTerm = s.search.Raw()
	view.SettledTerm = s.search.Settled()
	view.Searching = s.search.Pending()

	if t := s.Toasts.Current(); t != nil {
		view.Toast = &dto.ToastView{Message: t.Message, Type: t.Type}
	}
	return view
}

// Close cancels every pending timer the session owns. The session
// rejects state changes afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.splash != nil {
		s.splash.Stop()
		s.splash = nil
	}
	s.mu.Unlock()

	s.search.Stop()
	s.Toasts.Stop()
}
