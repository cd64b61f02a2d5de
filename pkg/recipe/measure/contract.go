package measure

import "time"

type Measure interface {
	AddMetric(stepID string) Metric
	GetMetric(stepID string) Metric
	AllMetrics() map[string]Metric
}

type Metric interface {
	AddDuration(elapsed time.Duration)
	AddSkipped()
	AVGDuration() time.Duration
	Count() int64
	Skipped() int64
}
