package record

import (
	"log/slog"

	"github.com/dmitrymomot/recordkit/pkg/logger"
)

// Observer is notified synchronously of record writes. Implementations must
// not modify the record they observe.
type Observer interface {
	Committed(schema, field string, value any)
	Rejected(schema, field string, value any, err error)
}

type nopObserver struct{}

func (nopObserver) Committed(string, string, any)        {}
func (nopObserver) Rejected(string, string, any, error) {}

// Observers fans every notification out to each non-nil observer in order.
func Observers(observers ...Observer) Observer {
	var list multiObserver
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) Committed(schema, field string, value any) {
	for _, o := range m {
		o.Committed(schema, field, value)
	}
}

func (m multiObserver) Rejected(schema, field string, value any, err error) {
	for _, o := range m {
		o.Rejected(schema, field, value, err)
	}
}

// LogObserver logs commits at debug level and rejections at warn level.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver creates an observer writing to log, or to slog.Default
// when log is nil.
func NewLogObserver(log *slog.Logger) *LogObserver {
	if log == nil {
		log = slog.Default()
	}
	return &LogObserver{log: log.With(logger.Component("record"))}
}

func (o *LogObserver) Committed(schema, field string, value any) {
	o.log.Debug("field committed",
		logger.Schema(schema),
		logger.Field(field),
		logger.Outcome(logger.OutcomeCommitted),
	)
}

func (o *LogObserver) Rejected(schema, field string, value any, err error) {
	o.log.Warn("field rejected",
		logger.Schema(schema),
		logger.Field(field),
		logger.Outcome(logger.OutcomeRejected),
		slog.Any("value", value),
		logger.Error(err),
	)
}
