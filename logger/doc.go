// Package logger provides structured logging for restkit using zerolog.
//
// Packages obtain a component-scoped logger from the registry and log
// through it; the global logger is configured once from Config.
//
//	logger.Init(logger.Config{Level: "debug", Format: "json"})
//	log := logger.Get("validation")
//	log.Debug("coerced value", logger.Fields("field", "count"))
package logger
