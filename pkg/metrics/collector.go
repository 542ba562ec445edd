package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Rejection kinds used as the "kind" label.
const (
	KindTypeMismatch    = "type_mismatch"
	KindBelowMinimum    = "below_minimum"
	KindAboveMaximum    = "above_maximum"
	KindSizeExceeded    = "size_exceeded"
	KindNotAllowed      = "not_allowed"
	KindPatternMismatch = "pattern_mismatch"
	KindFormatMismatch  = "format_mismatch"
	KindUnknownField    = "unknown_field"
	KindArityMismatch   = "arity_mismatch"
	KindDuplicateValue  = "duplicate_value"
	KindOther           = "other"
)

// Collector counts record writes by schema, field and outcome, and
// rejections by kind. It is a prometheus.Collector and a record.Observer,
// so the same value is registered and passed to record.WithObserver.
type Collector struct {
	writes     *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

var _ record.Observer = (*Collector)(nil)

// NewCollector creates a collector whose metric names start with namespace.
// An empty namespace gives "recordkit".
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "recordkit"
	}
	return &Collector{
		writes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "field_writes_total",
				Help:      "Total number of field writes by outcome.",
			},
			[]string{"schema", "field", "outcome"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejections_total",
				Help:      "Total number of rejected field writes by rejection kind.",
			},
			[]string{"schema", "kind"},
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.writes.Describe(ch)
	c.rejections.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.writes.Collect(ch)
	c.rejections.Collect(ch)
}

func (c *Collector) Committed(schemaName, field string, _ any) {
	c.writes.WithLabelValues(schemaName, field, logger.OutcomeCommitted).Inc()
}

func (c *Collector) Rejected(schemaName, field string, _ any, err error) {
	c.writes.WithLabelValues(schemaName, field, logger.OutcomeRejected).Inc()
	c.rejections.WithLabelValues(schemaName, Kind(err)).Inc()
}

// Kind classifies a rejection into one of the Kind constants.
func Kind(err error) string {
	kinds := []struct {
		target error
		kind   string
	}{
		{validator.ErrTypeMismatch, KindTypeMismatch},
		{validator.ErrBelowMinimum, KindBelowMinimum},
		{validator.ErrAboveMaximum, KindAboveMaximum},
		{validator.ErrSizeExceeded, KindSizeExceeded},
		{validator.ErrNotAllowed, KindNotAllowed},
		{validator.ErrPatternMismatch, KindPatternMismatch},
		{validator.ErrFormatMismatch, KindFormatMismatch},
		{schema.ErrUnknownField, KindUnknownField},
		{record.ErrArityMismatch, KindArityMismatch},
		{record.ErrDuplicateValue, KindDuplicateValue},
	}
	for _, k := range kinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return KindOther
}
