package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/taxonomy"
	"github.com/dalili-app/dalili-backend/pkg/logger"
)

// ReportConfirmation is the toast message shown after a successful
// status submission.
const ReportConfirmation = "تم تحديث الحالة بنجاح، شكراً لمساهمتك!"

type reportBranchStore interface {
	ApplyReport(ctx context.Context, id string, status models.LiquidityStatus, crowdLevel int, at time.Time) (*models.Branch, bool)
}

type reportService struct {
	branches reportBranchStore
	clockNow func() time.Time
	newID    func() string
}

func NewReportService(branches reportBranchStore) *reportService {
	return &reportService{
		branches: branches,
		clockNow: time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Submit folds a status report into the target branch. The crowd level is
// derived from the status, never reported directly. A lookup miss is a
// silent no-op: ok is false and both results are nil. The returned Report
// is transient; only the latest state survives, on the branch itself.
func (s *reportService) Submit(ctx context.Context, branchID, userID string, status models.LiquidityStatus) (*models.Report, *models.Branch, bool, error) {
	log := logger.FromContext(ctx)

	if !status.Reportable() {
		return nil, nil, false, errs.NewValidationError("status is not reportable: " + string(status))
	}

	now := s.clockNow()
	branch, ok := s.branches.ApplyReport(ctx, branchID, status, taxonomy.CrowdLevelFor(status), now)
	if !ok {
		log.Warn("report for unknown branch ignored", "branch_id", branchID)
		return nil, nil, false, nil
	}

	report := &models.Report{
		ID:        s.newID(),
		BranchID:  branchID,
		Status:    status,
		Timestamp: now,
		UserID:    userID,
	}

	log.Info("report submitted", "branch_id", branchID, "status", status, "crowd_level", branch.CrowdLevel)
	return report, branch, true, nil
}
