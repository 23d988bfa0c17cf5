package payments

import (
	"fmt"
	"os"
	"strings"

	"github.com/paylens-dev/paylens/internal/model"
)

// Service provides in-memory access to the payment report dataset.
// Exact duplicate rows are dropped on construction, keeping the first
// occurrence.
type Service struct {
	reports []model.PaymentReport
	dropped int
}

// NewService creates a Service from a slice of reports, deduplicating
// exact duplicate rows.
func NewService(reports []model.PaymentReport) *Service {
	seen := make(map[string]bool, len(reports))
	kept := make([]model.PaymentReport, 0, len(reports))
	dropped := 0
	for _, r := range reports {
		key := strings.Join(MarshalReport(r), "\x1f")
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true
		kept = append(kept, r)
	}
	return &Service{reports: kept, dropped: dropped}
}

// Load reads a payment report CSV from path and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening payments dataset: %w", err)
	}
	defer f.Close()

	reports, err := ReadReports(f)
	if err != nil {
		return nil, fmt.Errorf("reading payments dataset: %w", err)
	}
	return NewService(reports), nil
}

// All returns the deduplicated reports in input order.
func (s *Service) All() []model.PaymentReport {
	return s.reports
}

// Dropped returns the number of duplicate rows removed on load.
func (s *Service) Dropped() int {
	return s.dropped
}

// ByGroup returns all reports with the given payment group.
func (s *Service) ByGroup(group model.PaymentGroup) []model.PaymentReport {
	var result []model.PaymentReport
	for _, r := range s.reports {
		if r.Group == group {
			result = append(result, r)
		}
	}
	return result
}
