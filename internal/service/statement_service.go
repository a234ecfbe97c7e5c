package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripbill-be-svc/internal/cache"
	"tripbill-be-svc/internal/models/response"
	"tripbill-be-svc/internal/repository"
	"tripbill-be-svc/pkg/logger"
)

// StatementService defines the interface for monthly statement operations
type StatementService interface {
	MonthlyStatement(ctx context.Context, vendorID uint, year, month int) (*response.MonthlyStatementResponse, error)
}

// statementService implements StatementService with a cache-aside read
// path over the invoice store
type statementService struct {
	invoiceRepo repository.InvoiceRepository
	cache       cache.Cache
	cacheTTL    time.Duration
	logger      *logger.Logger
}

// NewStatementService creates a new instance of StatementService
func NewStatementService(invoiceRepo repository.InvoiceRepository, cache cache.Cache, cacheTTL time.Duration, logger *logger.Logger) StatementService {
	return &statementService{
		invoiceRepo: invoiceRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// MonthlyStatement returns the aggregate total and CSV ledger for one
// vendor and one calendar month. Cached payloads are returned verbatim
// until their TTL expires; invoice writes do not invalidate them, so a
// row added to an already-cached month becomes visible only after expiry.
func (s *statementService) MonthlyStatement(ctx context.Context, vendorID uint, year, month int) (*response.MonthlyStatementResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: year %d month %d", ErrInvalidPeriod, year, month)
	}

	key := statementCacheKey(vendorID, year, month)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var stmt response.MonthlyStatementResponse
		if err := json.Unmarshal([]byte(cached), &stmt); err == nil {
			return &stmt, nil
		}
		s.logger.WithField("key", key).Warn("Discarding undecodable cached statement")
	} else if !errors.Is(err, cache.ErrMiss) {
		// A failing cache read degrades to a miss; the store still answers
		s.logger.WithError(err).WithField("key", key).Warn("Statement cache read failed, computing from store")
	}

	start, end := monthWindow(year, month)

	rows, err := s.invoiceRepo.FindByVendorAndDateRange(vendorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice rows: %w", err)
	}

	var total float64
	for _, row := range rows {
		total += row.Amount
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"invoice_row_id", "trip_id", "amount", "note"})
	for _, row := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(row.ID), 10),
			strconv.FormatUint(uint64(row.TripID), 10),
			strconv.FormatFloat(row.Amount, 'f', -1, 64),
			row.Note,
		})
	}
	w.Flush()

	stmt := &response.MonthlyStatementResponse{
		Total: total,
		CSV:   sb.String(),
	}

	payload, err := json.Marshal(stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode statement payload: %w", err)
	}
	if err := s.cache.SetWithTTL(ctx, key, string(payload), s.cacheTTL); err != nil {
		// Caching is best effort; the computed statement is still returned
		s.logger.WithError(err).WithField("key", key).Warn("Failed to cache monthly statement")
	}

	s.logger.WithFields(map[string]interface{}{
		"vendor_id": vendorID,
		"year":      year,
		"month":     month,
		"rows":      len(rows),
		"total":     total,
	}).Info("Monthly statement computed")

	return stmt, nil
}

// statementCacheKey builds the deterministic cache key for one vendor-month
func statementCacheKey(vendorID uint, year, month int) string {
	return fmt.Sprintf("reports:vendor:%d:%d:%d", vendorID, year, month)
}

// monthWindow computes the half-open UTC window [first of month, first of
// next month). Crossing into the next month is done by adding 32 days and
// truncating back to day one, so varying month lengths need no table.
func monthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := start.AddDate(0, 0, 32)
	end := time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, end
}
