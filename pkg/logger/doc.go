// Package logger builds structured slog loggers with context extraction.
//
// New returns a *slog.Logger writing text or JSON to stderr (or any writer)
// at a chosen level. Every handler is wrapped in a LogHandlerDecorator that
// runs ContextExtractor functions on each call and appends their attributes
// to the record.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithExtractors(logger.StringExtractor("run_id")),
//	)
//
//	ctx = logger.WithValue(ctx, "run_id", ksuid.New().String())
//	log.InfoContext(ctx, "generated", slog.Int("count", 10))
//	// {"time":...,"level":"INFO","msg":"generated","count":10,"run_id":"2Jh..."}
//
// NewNope returns a logger that discards everything and is the default for
// code that was not handed a logger.
package logger
