package telemetry

import (
	"fmt"
	"strings"
	"sync"
)

type ReportKind int

const (
	KindBroken ReportKind = iota
	KindWarning
	KindDebug
	KindCount
)

// Report is a single call made against a Recorder.
type Report struct {
	Kind   ReportKind
	Id     string
	Params []any
	Count  int64
}

// Recorder is an API that keeps every report in memory so tests can
// make assertions about what a component reported.
type Recorder struct {
	lock    sync.Mutex
	reports []Report
}

func (r *Recorder) add(report Report) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reports = append(r.reports, report)
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.add(Report{Kind: KindBroken, Id: id, Params: params})
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.add(Report{Kind: KindWarning, Id: id, Params: params})
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.add(Report{Kind: KindDebug, Id: msg, Params: params})
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.add(Report{Kind: KindCount, Id: id, Count: count})
}

// Reports returns a copy of the reports of a given kind in the order they were made.
func (r *Recorder) Reports(kind ReportKind) []Report {
	r.lock.Lock()
	defer r.lock.Unlock()

	var out []Report
	for _, report := range r.reports {
		if report.Kind == kind {
			out = append(out, report)
		}
	}
	return out
}

// Contains reports whether any report of the given kind has an id or
// a stringified param containing `substr`.
func (r *Recorder) Contains(kind ReportKind, substr string) bool {
	for _, report := range r.Reports(kind) {
		if strings.Contains(report.Id, substr) {
			return true
		}
		for _, p := range report.Params {
			if strings.Contains(fmt.Sprint(p), substr) {
				return true
			}
		}
	}
	return false
}
