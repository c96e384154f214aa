package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	LocationJira  = "jira"
	LocationSlack = "slack"
	LocationKlass = "klass"
	LocationUsers = "users"
)

type Metrics struct {
	Errors        *prometheus.CounterVec
	IssuesCreated prometheus.Counter
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Errors, m.IssuesCreated}
}

func (m *Metrics) Error(location string) {
	m.Errors.WithLabelValues(location).Inc()
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
		}, []string{"location"}),
		IssuesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issues_created_total",
		}),
	}
}
