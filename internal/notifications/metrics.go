package notifications

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts notification send outcomes per recipient kind, so operators
// can see delivery failures that are deliberately invisible in checkout
// responses.
type Metrics struct {
	sends   *prometheus.CounterVec
	retries prometheus.Counter
}

// NewMetrics registers the notification metrics on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegisterer registers the notification metrics on the given
// registerer. Re-registering returns the existing collectors, so tests can
// create metrics repeatedly.
func NewMetricsWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		sends: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "marketplace_notification_sends_total",
			Help: "Total notification send attempts by recipient kind and outcome",
		}, []string{"kind", "outcome"}),
		retries: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketplace_notification_retries_total",
			Help: "Total notification sends re-attempted by the retry job",
		}),
	}
}

// ObserveSend records one send attempt outcome.
func (m *Metrics) ObserveSend(kind string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.sends.WithLabelValues(kind, outcome).Inc()
}

// ObserveRetry records one retry attempt made by the background job.
func (m *Metrics) ObserveRetry() {
	m.retries.Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(
	registerer prometheus.Registerer,
	opts prometheus.CounterOpts,
	labels []string,
) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}
