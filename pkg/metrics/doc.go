// Package metrics exposes record write outcomes as Prometheus counters.
//
//	c := metrics.NewCollector("recordcheck")
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(c)
//
//	r, err := record.New(s, values, record.WithObserver(c))
//
// Two counters are maintained: <namespace>_field_writes_total{schema, field,
// outcome} and <namespace>_rejections_total{schema, kind}.
package metrics
