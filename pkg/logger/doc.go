// Package logger builds *slog.Logger instances from functional options.
//
// New picks a JSON or text handler. Registered ContextExtractor callbacks run
// on every record, so request ids and client addresses appear without being
// passed around explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "attestd"),
//	    logger.WithConfig(cfg.Log),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "seed provisioned", logger.Store("file"))
//
// Attribute helpers in attr.go keep key names consistent. Seed values and
// TOTP codes must never be passed to a logger.
package logger
