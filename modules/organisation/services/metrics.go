package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	drillDownSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "organisation_drilldown_sessions_total",
		Help: "Number of drill-down sessions loaded.",
	})
	drillDownSessionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "organisation_drilldown_session_errors_total",
		Help: "Number of drill-down session loads that failed.",
	})
	drillDownLoadSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "organisation_drilldown_load_seconds",
		Help:    "Wall time spent loading the relations behind a drill-down session.",
		Buckets: prometheus.DefBuckets,
	})
)
