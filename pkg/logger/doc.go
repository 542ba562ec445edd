// Package logger builds slog loggers from functional options and provides
// attribute helpers that keep key names consistent across the module.
//
// New creates a *slog.Logger writing text or JSON to the configured output
// (stderr by default). Environment options pick defaults: development logs
// text at debug level, staging and production log JSON at info level.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "recordcheck"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.Warn("field rejected",
//	    logger.Schema("stock"),
//	    logger.Field("shares"),
//	    logger.Outcome(logger.OutcomeRejected),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check. WithFormat and WithLevelName panic on invalid
// values.
package logger
