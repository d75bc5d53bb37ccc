// Package logging provides structured JSON logging for adversarial critique
// runs.
//
// It wraps log/slog. A [Logger] either owns a debug.log file inside a log
// directory or writes to an arbitrary io.Writer (stderr by default). Child
// loggers created with [Logger.With] and [Logger.WithComponent] share the parent's output and carry extra
// attributes on every entry.
//
//	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithComponent("roles").Debug("roles assigned", "strategist", "claude")
//
// Use [IsValidLevel] to check a configured level and [ParseLevel] to
// normalize it; [ValidLevels] lists the canonical names.
//
// All types in this package are safe for concurrent use.
package logging
