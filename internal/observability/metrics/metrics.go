package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters/histograms for the booking engine.
type SchedulingMetrics struct {
	bookingOutcomes  *prometheus.CounterVec
	calendarRequests *prometheus.CounterVec
	calendarLatency  *prometheus.HistogramVec
	llmRequests      *prometheus.CounterVec
	llmLatency       prometheus.Histogram
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		bookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "avalon",
			Subsystem: "booking",
			Name:      "outcomes_total",
			Help:      "Booking resolution outcomes per conversation turn",
		}, []string{"outcome"}),
		calendarRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "avalon",
			Subsystem: "calendar",
			Name:      "requests_total",
			Help:      "Total Google Calendar API calls",
		}, []string{"op", "status"}),
		calendarLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "avalon",
			Subsystem: "calendar",
			Name:      "request_seconds",
			Help:      "Latency of Google Calendar API calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "avalon",
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Total generator calls",
		}, []string{"status"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "avalon",
			Subsystem: "llm",
			Name:      "request_seconds",
			Help:      "Latency of generator calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingOutcomes, m.calendarRequests, m.calendarLatency, m.llmRequests, m.llmLatency)
	return m
}

func (m *SchedulingMetrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.bookingOutcomes.WithLabelValues(outcome).Inc()
}

func (m *SchedulingMetrics) ObserveCalendarRequest(op, status string, seconds float64) {
	if m == nil {
		return
	}
	m.calendarRequests.WithLabelValues(op, status).Inc()
	m.calendarLatency.WithLabelValues(op).Observe(seconds)
}

func (m *SchedulingMetrics) ObserveLLMRequest(status string, seconds float64) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(status).Inc()
	m.llmLatency.Observe(seconds)
}
