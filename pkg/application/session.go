package application

import (
	"sync"

	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
)

// AnalysisSession coalesces analysis requests for a single display
// surface: at most one result is current, and a newer submission
// supersedes any older one still in flight. There is no cancellation;
// stale results are simply discarded on arrival.
type AnalysisSession struct {
	service *AnalysisService

	mu      sync.Mutex
	seq     uint64
	current *analysis.Report
}

func NewAnalysisSession(service *AnalysisService) *AnalysisSession {
	return &AnalysisSession{service: service}
}

// Submit analyzes the text and installs the report as the session's
// current result unless a newer submission arrived in the meantime.
// The returned bool reports whether the result was installed.
func (s *AnalysisSession) Submit(text, source string) (*analysis.Report, bool, error) {
	s.mu.Lock()
	s.seq++
	ticket := s.seq
	s.mu.Unlock()

	report, err := s.service.AnalyzeText(text, source)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.seq {
		// A newer request won; drop this result.
		return report, false, nil
	}
	s.current = report
	return report, true, nil
}

// Current returns the most recent installed report, or nil.
func (s *AnalysisSession) Current() *analysis.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
