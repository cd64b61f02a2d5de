package measure

import (
	"sync"
)

type DefaultMeasure struct {
	mu    sync.RWMutex
	steps map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

// AddMetric returns the metric of the step, creating it when it does not exist yet.
func (m *DefaultMeasure) AddMetric(stepID string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.steps[stepID]; ok {
		return mt
	}

	mt := &DefaultMetric{}
	m.steps[stepID] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(stepID string) Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.steps[stepID]
}

// AllMetrics returns a snapshot of the metrics by step ID.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make(map[string]Metric, len(m.steps))
	for k, v := range m.steps {
		res[k] = v
	}

	return res
}

var _ Measure = (*DefaultMeasure)(nil)
