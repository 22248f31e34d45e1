// Package metric provides Prometheus instrumentation for semschema
// ontology operations. All methods are nil-safe so instrumentation stays
// optional for library callers.
package metric

import "github.com/prometheus/client_golang/prometheus"

// Metrics contains the ontology-level metrics.
type Metrics struct {
	ReloadsTotal           *prometheus.CounterVec
	ValidationsTotal       *prometheus.CounterVec
	QueriesTotal           *prometheus.CounterVec
	ConsistencyChecksTotal *prometheus.CounterVec
	LoadedEntities         *prometheus.GaugeVec
}

// NewMetrics creates a Metrics instance with all ontology metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semschema",
				Subsystem: "ontology",
				Name:      "reloads_total",
				Help:      "Total number of ontology reloads",
			},
			[]string{"domain", "status"},
		),
		ValidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semschema",
				Subsystem: "ontology",
				Name:      "validations_total",
				Help:      "Total number of transaction validations",
			},
			[]string{"domain", "result"},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semschema",
				Subsystem: "ontology",
				Name:      "queries_total",
				Help:      "Total number of ontology queries",
			},
			[]string{"domain", "status"},
		),
		ConsistencyChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semschema",
				Subsystem: "ontology",
				Name:      "consistency_checks_total",
				Help:      "Total number of peer consistency checks",
			},
			[]string{"domain", "status"},
		),
		LoadedEntities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "semschema",
				Subsystem: "ontology",
				Name:      "loaded_entities",
				Help:      "Entity counts from the last statistics collection",
			},
			[]string{"domain", "kind"},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.ReloadsTotal,
		m.ValidationsTotal,
		m.QueriesTotal,
		m.ConsistencyChecksTotal,
		m.LoadedEntities,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// statusLabel maps a success flag to a status label value.
func statusLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// ObserveReload records one reload attempt.
func (m *Metrics) ObserveReload(domain string, ok bool) {
	if m == nil {
		return
	}
	m.ReloadsTotal.WithLabelValues(domain, statusLabel(ok)).Inc()
}

// ObserveValidation records one transaction validation.
func (m *Metrics) ObserveValidation(domain string, conforms bool) {
	if m == nil {
		return
	}
	result := "conforms"
	if !conforms {
		result = "violations"
	}
	m.ValidationsTotal.WithLabelValues(domain, result).Inc()
}

// ObserveQuery records one ontology query.
func (m *Metrics) ObserveQuery(domain string, ok bool) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(domain, statusLabel(ok)).Inc()
}

// ObserveConsistencyCheck records one peer consistency check.
func (m *Metrics) ObserveConsistencyCheck(domain string, ok bool) {
	if m == nil {
		return
	}
	m.ConsistencyChecksTotal.WithLabelValues(domain, statusLabel(ok)).Inc()
}

// SetLoadedEntities records the latest statistics counts.
func (m *Metrics) SetLoadedEntities(domain string, classes, properties, individuals uint) {
	if m == nil {
		return
	}
	m.LoadedEntities.WithLabelValues(domain, "class").Set(float64(classes))
	m.LoadedEntities.WithLabelValues(domain, "property").Set(float64(properties))
	m.LoadedEntities.WithLabelValues(domain, "individual").Set(float64(individuals))
}
