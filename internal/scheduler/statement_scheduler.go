package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/logger"
)

// StatementScheduler pre-warms the statement cache so the first reads
// after a month closes hit cached payloads
type StatementScheduler struct {
	statementService service.StatementService
	vendorRepo       repository.VendorRepository
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewStatementScheduler creates a new statement scheduler
func NewStatementScheduler(statementService service.StatementService, vendorRepo repository.VendorRepository, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *StatementScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &StatementScheduler{
		statementService: statementService,
		vendorRepo:       vendorRepo,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *StatementScheduler) Start() error {
	s.logger.Info("Starting statement scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling statement warmup job")
	_, err := s.cron.AddFunc(s.cronExpression, s.warmupPreviousMonth)
	if err != nil {
		return fmt.Errorf("failed to schedule statement warmup job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Statement scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *StatementScheduler) Stop() {
	s.logger.Info("Stopping statement scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Statement scheduler stopped successfully")
}

// warmupPreviousMonth computes last month's statement for every vendor,
// populating the cache through the normal miss path
func (s *StatementScheduler) warmupPreviousMonth() {
	jobCode := "STATEMENT_CACHE_WARMUP"
	runID := uuid.New().String()
	now := time.Now()

	s.logScheduler(jobCode, runID, "Starting statement cache warmup", "START", &now)

	prev := now.UTC().AddDate(0, 0, -now.Day())
	year, month := prev.Year(), int(prev.Month())

	s.logger.WithField("year", year).WithField("month", month).Info("Warming statement cache for previous month")
	s.logScheduler(jobCode, runID, fmt.Sprintf("Warming statements for month %d year %d", month, year), "RUNNING", &now)

	ids, err := s.vendorRepo.ListVendorIDs()
	if err != nil {
		s.logScheduler(jobCode, runID, fmt.Sprintf("Failed to list vendors: %v", err), "FAILED", &now)
		s.logger.WithError(err).Error("Failed to list vendors for statement warmup")
		return
	}

	ctx := context.Background()
	warmed := 0
	for _, vendorID := range ids {
		if _, err := s.statementService.MonthlyStatement(ctx, vendorID, year, month); err != nil {
			s.logger.WithError(err).WithField("vendor_id", vendorID).Error("Failed to warm vendor statement")
			continue
		}
		warmed++
	}

	message := fmt.Sprintf("Warmed %d of %d vendor statements for %d-%02d", warmed, len(ids), year, month)
	s.logScheduler(jobCode, runID, message, "SUCCESS", &now)
	s.logger.WithField("warmed", warmed).WithField("vendors", len(ids)).Info("Statement cache warmup completed")
}

// logScheduler creates a new log entry in the database
func (s *StatementScheduler) logScheduler(jobCode, runID, message, status string, createdAt *time.Time) {
	logEntry := &models.SchedulerLog{
		RunID:     &runID,
		JobCode:   &jobCode,
		Message:   &message,
		Status:    &status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := s.schedulerLogRepo.CreateSchedulerLog(logEntry); err != nil {
		s.logger.WithField("error", err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
