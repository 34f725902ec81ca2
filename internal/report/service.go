package report

import (
	"context"
	"log/slog"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) Get(_ context.Context, sel Selection) Report {
	return Static(sel)
}

// Export records the request. No document is produced.
func (s *Service) Export(ctx context.Context, sel Selection) error {
	attrs := []any{"type", string(sel.Type), "period", string(sel.Period)}
	if sel.Period == PeriodCustom {
		attrs = append(attrs, "from", sel.From, "to", sel.To)
	}

	s.logger.InfoContext(ctx, "exporting report", attrs...)

	return nil
}
