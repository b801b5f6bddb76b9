package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics records submission and timeline activity.
type PipelineMetrics struct {
	submissions   *prometheus.CounterVec
	timelineLoads *prometheus.CounterVec
	fallbackHits  prometheus.Counter
	createSeconds prometheus.Histogram
}

// NewPipelineMetrics registers the pipeline metrics on the provided registerer.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	if reg == nil {
		return &PipelineMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "memory_submissions_total",
		Help: "Memory submissions by outcome.",
	}, []string{"outcome"})
	timelineLoads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timeline_loads_total",
		Help: "Timeline queries by outcome.",
	}, []string{"outcome"})
	fallbackHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timeline_fallback_total",
		Help: "Timeline loads served from placeholder cards.",
	})
	createSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "memory_create_duration_seconds",
		Help:    "Duration of the blob-then-document create pipeline.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(submissions, timelineLoads, fallbackHits, createSeconds)
	return &PipelineMetrics{
		submissions:   submissions,
		timelineLoads: timelineLoads,
		fallbackHits:  fallbackHits,
		createSeconds: createSeconds,
	}
}

// ObserveCreate records the duration of one create pipeline run.
func (p *PipelineMetrics) ObserveCreate(duration time.Duration) {
	if p == nil || p.createSeconds == nil {
		return
	}
	p.createSeconds.Observe(duration.Seconds())
}

// IncSubmission increments the submission counter for the outcome label.
func (p *PipelineMetrics) IncSubmission(outcome string) {
	if p == nil || p.submissions == nil {
		return
	}
	p.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncTimelineLoad increments the timeline counter for the outcome label.
func (p *PipelineMetrics) IncTimelineLoad(outcome string) {
	if p == nil || p.timelineLoads == nil {
		return
	}
	p.timelineLoads.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncFallback increments the placeholder-card counter.
func (p *PipelineMetrics) IncFallback() {
	if p == nil || p.fallbackHits == nil {
		return
	}
	p.fallbackHits.Inc()
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
