// Package logger provides a small leveled console logger that decorates
// each line with a timestamp, an icon, the level name and the call site.
//
// # Output
//
// With the default Config a warning looks like:
//
//	2024-05-01 10:42:07 ⚠️ WARNING [main.go]:42 main.run -> disk almost full
//
// Tokens always come in that order, separated by single spaces: timestamp,
// icon, level name, call-site tag, message. Each decoration is switched on or
// off per level through Config. Plain lines carry no decoration at all.
//
// # Features
//
//   - Four levels: DEBUG, INFO, WARNING, ERROR
//   - Per-level timestamp, icon, level name and call-site toggles
//   - Icon overrides per level
//   - Unicode date patterns such as "yyyy-MM-dd HH:mm:ss" or "HH:mm:ss.SSS"
//   - Optional ANSI colors on level names via Config.SetColorize
//   - Independent Logger instances, a default one, and context propagation
//   - EVRLOG_* environment variables via LoadEnvConfig
//
// # Usage
//
// Use the default logger:
//
//	logger.Info("server started")
//	logger.Errorf("failed to connect: %v", err)
//
// Or build one per subsystem:
//
//	db := logger.New(logger.WithOutput(os.Stderr))
//	db.Config().SetCallSiteLevels(logger.AllLevelsSet())
//	db.Config().SetIconOverride(logger.ErrorLevel, "🔥")
//	db.Warning("slow query")
//
// # Debug Mode
//
// Output is gated by a process-wide flag. It is on by default and off when
// the binary is built with -tags release; SetDebugMode changes it at run
// time. When off, every entry point returns immediately without formatting.
package logger
