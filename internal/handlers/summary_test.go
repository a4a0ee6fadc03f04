package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/models"
)

type stubSummaryService struct {
	called bool
	bankID string
	text   string
}

func (s *stubSummaryService) Analyze(_ context.Context, bank *models.Bank) string {
	s.called = true
	s.bankID = bank.ID
	return s.text
}

func newSummaryHandlersForTest(dir *stubDirectoryService, svc *stubSummaryService, resp *stubResponseHandler) *summaryHandlers {
	return NewSummaryHandlers(&Deps{
		ResponseHandler: resp,
		DirectorySvc:    dir,
		SummarySvc:      svc,
	})
}

func TestAnalyzeStoresSummaryOnSession(t *testing.T) {
	dir := &stubDirectoryService{bank: &models.Bank{ID: "1", Name: "مصرف الجمهورية", City: "طرابلس"}}
	svc := &stubSummaryService{text: "السيولة متوفرة في فرع الميدان."}
	resp := &stubResponseHandler{}
	h := newSummaryHandlersForTest(dir, svc, resp)

	sess := newHandlerSession()
	defer sess.Close()
	sess.SelectBank("1")

	rr, req := recordedRequest(http.MethodPost, "/summaries/1", "", sess)
	h.Analyze(rr, withURLParam(req, "bankId", "1"))

	if !svc.called || svc.bankID != "1" {
		t.Fatalf("summary service not called for bank: %+v", svc)
	}
	snap := sess.Snapshot()
	if snap.Summary != svc.text || snap.Analyzing {
		t.Fatalf("summary not stored on session: %+v", snap)
	}
	if !resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess not called")
	}
}

func TestAnalyzeUnknownBank(t *testing.T) {
	dir := &stubDirectoryService{bankErr: errs.NewNotFoundError("bank not found")}
	svc := &stubSummaryService{}
	resp := &stubResponseHandler{}
	h := newSummaryHandlersForTest(dir, svc, resp)

	sess := newHandlerSession()
	defer sess.Close()

	rr, req := recordedRequest(http.MethodPost, "/summaries/ghost", "", sess)
	h.Analyze(rr, withURLParam(req, "bankId", "ghost"))

	if svc.called {
		t.Fatalf("summary requested for unknown bank")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("HandleError not called")
	}
}

func TestAnalyzeDropsStaleResult(t *testing.T) {
	dir := &stubDirectoryService{bank: &models.Bank{ID: "1", City: "طرابلس"}}
	svc := &stubSummaryService{text: "نتيجة متأخرة"}
	resp := &stubResponseHandler{}
	h := newSummaryHandlersForTest(dir, svc, resp)

	sess := newHandlerSession()
	defer sess.Close()
	sess.SelectBank("2") // the client is looking at a different bank

	rr, req := recordedRequest(http.MethodPost, "/summaries/1", "", sess)
	h.Analyze(rr, withURLParam(req, "bankId", "1"))

	if snap := sess.Snapshot(); snap.Summary != "" || snap.Analyzing {
		t.Fatalf("stale analysis leaked into the session: %+v", snap)
	}
}
