package services

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/taxonomy"
	"github.com/dalili-app/dalili-backend/pkg/logger"
)

// Fixed user-facing strings. The summary requester never surfaces raw
// errors; every failure path resolves to one of these.
const (
	SummaryUnavailable = "عذراً، خدمة التحليل الذكي غير متوفرة حالياً (API Key missing)."
	SummaryFailed      = "حدث خطأ أثناء الاتصال بالمحلل الذكي."
	SummaryEmpty       = "لم يتمكن النظام من تحليل البيانات حالياً."
)

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type summaryBranchStore interface {
	ListByBank(ctx context.Context, bankID string) []*models.Branch
}

type summaryService struct {
	gen      TextGenerator
	branches summaryBranchStore
	group    singleflight.Group
}

// NewSummaryService builds the liquidity summary requester. gen may be
// nil when no API credential is configured; every request then
// short-circuits without a network call.
func NewSummaryService(gen TextGenerator, branches summaryBranchStore) *summaryService {
	return &summaryService{
		gen:      gen,
		branches: branches,
	}
}

// branchSnapshot is what the model sees per branch.
type branchSnapshot struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	IsATM      bool   `json:"isAtm"`
	Crowd      int    `json:"crowd"`
	LastUpdate string `json:"lastUpdate"`
}

// Analyze returns a short Arabic liquidity summary for the bank. It
// always resolves to prose; concurrent calls for the same bank share a
// single in-flight request.
func (s *summaryService) Analyze(ctx context.Context, bank *models.Bank) string {
	log := logger.FromContext(ctx)

	if s.gen == nil {
		return SummaryUnavailable
	}

	result, err, _ := s.group.Do(bank.ID, func() (any, error) {
		text, err := s.gen.GenerateText(ctx, s.buildPrompt(ctx, bank))
		if err != nil {
			return "", err
		}
		return text, nil
	})
	if err != nil {
		log.Error("liquidity analysis failed", "bank_id", bank.ID, "error", err)
		return SummaryFailed
	}

	text, _ := result.(string)
	if text == "" {
		return SummaryEmpty
	}

	log.Info("liquidity analysis completed", "bank_id", bank.ID)
	return text
}

func (s *summaryService) buildPrompt(ctx context.Context, bank *models.Bank) string {
	branches := s.branches.ListByBank(ctx, bank.ID)

	snapshots := make([]branchSnapshot, 0, len(branches))
	for _, b := range branches {
		snapshots = append(snapshots, branchSnapshot{
			Name:       b.Name,
			Status:     taxonomy.Classify(b.Status).Label,
			IsATM:      b.IsATM,
			Crowd:      b.CrowdLevel,
			LastUpdate: b.LastUpdate.Format(time.Kitchen),
		})
	}
	payload, _ := json.Marshal(snapshots)

	return "أنت محلل مالي ذكي لتطبيق \"دليلي المصرفي\" في ليبيا.\n" +
		"لديك بيانات الفروع التالية في مدينة " + bank.City + ":\n" +
		string(payload) + "\n\n" +
		"قم بتقديم ملخص قصير جداً (أقل من 50 كلمة) باللغة العربية حول وضع السيولة العام.\n" +
		"انصح المستخدم بأفضل مكان للذهاب إليه إذا أراد سحب نقود الآن.\n" +
		"كن ودوداً ومباشراً."
}
