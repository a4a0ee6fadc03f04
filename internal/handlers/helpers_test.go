package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/middleware"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/session"
)

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

type stubDirectoryService struct {
	banks         []dto.DirectoryBank
	bank          *models.Bank
	bankErr       error
	branch        *models.Branch
	branchErr     error
	allBranches   []*models.Branch
	branchViews   []dto.BranchView
	addedBank     *models.Bank
	addedBranch   *models.Branch
	addErr        error
	favorite      bool
	favoriteErr   error
	tab           models.HomeTab
	term          string
	availableOnly bool
	addBankCalled bool
}

func (s *stubDirectoryService) VisibleBanks(_ context.Context, tab models.HomeTab, term string, availableOnly bool) []dto.DirectoryBank {
	s.tab = tab
	s.term = term
	s.availableOnly = availableOnly
	return s.banks
}

func (s *stubDirectoryService) GetBank(_ context.Context, id string) (*models.Bank, error) {
	return s.bank, s.bankErr
}

func (s *stubDirectoryService) GetBranch(_ context.Context, id string) (*models.Branch, error) {
	return s.branch, s.branchErr
}

func (s *stubDirectoryService) AllBranches(_ context.Context) []*models.Branch {
	return s.allBranches
}

func (s *stubDirectoryService) BankBranches(_ context.Context, bankID string) ([]dto.BranchView, error) {
	return s.branchViews, nil
}

func (s *stubDirectoryService) AddBank(_ context.Context, name, city string) (*models.Bank, error) {
	s.addBankCalled = true
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.addedBank = &models.Bank{ID: "new", Name: name, City: city}
	return s.addedBank, nil
}

func (s *stubDirectoryService) AddBranch(_ context.Context, req dto.AddBranchRequest) (*models.Branch, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.addedBranch = &models.Branch{ID: "new", BankID: req.BankID, Name: req.Name, Address: req.Address, IsATM: req.IsATM}
	return s.addedBranch, nil
}

func (s *stubDirectoryService) ToggleFavorite(_ context.Context, bankID string) (bool, error) {
	if s.favoriteErr != nil {
		return false, s.favoriteErr
	}
	s.favorite = !s.favorite
	return s.favorite, nil
}

// short timers so tests never wait on production windows
func newHandlerSession() *session.Session {
	s := session.New("test-session", time.Hour, 5*time.Millisecond)
	s.Authenticate()
	return s
}

func requestWithSession(req *http.Request, sess *session.Session) *http.Request {
	return req.WithContext(middleware.NewContext(req.Context(), sess))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func recordedRequest(method, target, body string, sess *session.Session) (*httptest.ResponseRecorder, *http.Request) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if sess != nil {
		req = requestWithSession(req, sess)
	}
	return httptest.NewRecorder(), req
}
