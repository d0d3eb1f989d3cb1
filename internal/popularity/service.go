// Package popularity ranks names by how many pageviews their articles got.
package popularity

import (
	"context"
	"fmt"
	"io"
	"mathviews/internal/components/assert"
	"mathviews/internal/components/telemetry"
	"time"
)

const (
	report_service_no_result = "service.no-result"
)

type Service struct {
	names NameSource
	hits  HitsSource
	tel   telemetry.API
}

func NewService(names NameSource, hits HitsSource, tel telemetry.API) Service {
	assert.NotNil("name source", names)
	assert.NotNil("hits source", hits)
	assert.NotNil("telemetry", tel)

	return Service{
		names: names,
		hits:  hits,
		tel:   telemetry.NewScopedAPI("popularity", tel),
	}
}

// Run fetches every name, looks up its hits, and writes the ranking to
// `out`. The only error returned is a failure to get the names (or to write
// to `out`), a failure for any single name is recorded as NoResult.
func (s Service) Run(ctx context.Context, out io.Writer, opts ReportOptions) ([]Result, error) {
	start := time.Now()

	fmt.Fprintln(out, "Getting the list of names...")
	names, err := s.names.GetNames(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(out, "...done.\n\n")

	fmt.Fprintln(out, "Getting stats for each name...")
	results := Collect(ctx, s.hits, names, s.tel)
	fmt.Fprint(out, "...done.\n\n")

	ranked := Rank(results)
	err = Report(out, ranked, opts)
	if err != nil {
		return ranked, fmt.Errorf("write report: %w", err)
	}

	s.tel.ReportCount(report_service_no_result, int64(CountNoResult(ranked)))
	s.tel.ReportDebug("run finished", len(ranked), time.Since(start).String())

	return ranked, nil
}
