// Package metrics keeps lightweight in-process counters for the service.
// Snapshot is served on /metrics as JSON; there is no external metrics
// backend in this deployment.
package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests     uint64
	errorRequests     uint64
	rateLimited       uint64
	totalDurationMs   uint64
	evaluationsScored uint64
	chartsRendered    uint64
	reportsBuilt      uint64
	submissions       uint64
	submissionErrors  uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordEvaluation() {
	atomic.AddUint64(&c.evaluationsScored, 1)
}

func (c *Collector) RecordChart() {
	atomic.AddUint64(&c.chartsRendered, 1)
}

func (c *Collector) RecordReport() {
	atomic.AddUint64(&c.reportsBuilt, 1)
}

func (c *Collector) RecordSubmission(failed bool) {
	atomic.AddUint64(&c.submissions, 1)
	if failed {
		atomic.AddUint64(&c.submissionErrors, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal":  atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":     avg,
		"evaluationsScored": atomic.LoadUint64(&c.evaluationsScored),
		"chartsRendered":    atomic.LoadUint64(&c.chartsRendered),
		"reportsBuilt":      atomic.LoadUint64(&c.reportsBuilt),
		"submissions":       atomic.LoadUint64(&c.submissions),
		"submissionErrors":  atomic.LoadUint64(&c.submissionErrors),
	}
}
