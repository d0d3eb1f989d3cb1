package popularity

import (
	"context"
	"fmt"
	"mathviews/internal/components/telemetry"
)

const (
	report_collect = "collect"
)

type NameSource interface {
	GetNames(ctx context.Context) ([]string, error)
}

type HitsSource interface {
	GetHitsOnName(ctx context.Context, name string) (int, bool)
}

// lookup is the error boundary around a single name, a panic in the source
// becomes an error instead of taking the whole batch down.
func lookup(ctx context.Context, source HitsSource, name string) (hits int, err error) {
	defer func() {
		if r := recover(); r != nil {
			hits, err = NoResult, fmt.Errorf("panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return NoResult, err
	}
	hits, ok := source.GetHitsOnName(ctx, name)
	if !ok {
		return NoResult, nil
	}
	return hits, nil
}

// Collect looks up the hits of every name, one at a time, and returns one
// result per name in the same order. Names that fail are recorded as NoResult.
func Collect(ctx context.Context, source HitsSource, names []string, tel telemetry.API) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		hits, err := lookup(ctx, source, name)
		if err != nil {
			hits = NoResult
			tel.ReportWarning(
				report_collect,
				fmt.Errorf("error encountered while processing %s, skipping: %w", name, err),
			)
		}
		results = append(results, Result{Hits: hits, Name: name})
	}
	return results
}
