// Package obslog wraps go.uber.org/zap for operation-level structured
// logging. It never logs phrase, password, seed, entropy, or key
// material — only chain identifiers, counts, word counts, and error
// categories (spec.md §7 "Logging").
package obslog

import "go.uber.org/zap"

// Logger is the process-wide structured logger. It is nil-safe: every
// method tolerates a nil *Logger by treating it as a no-op, so callers
// that skip New (tests, library embedders) never crash.
type Logger struct {
	z *zap.Logger
}

// New builds a production Zap logger (JSON encoding, info level).
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	if l == nil || l.z == nil {
		return
	}
	_ = l.z.Sync()
}

// Transform logs a completed transform call: word count only, never the
// phrase or password.
func (l *Logger) Transform(wordCount int) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info("transform", zap.Int("word_count", wordCount))
}

// Derive logs one chain's derive outcome: chain name, requested count,
// and whether it succeeded.
func (l *Logger) Derive(chain string, count int, err error) {
	if l == nil || l.z == nil {
		return
	}
	if err != nil {
		l.z.Warn("derive chain failed", zap.String("chain", chain), zap.Int("count", count), zap.String("error_category", errorCategory(err)))
		return
	}
	l.z.Info("derive chain ok", zap.String("chain", chain), zap.Int("count", count))
}

// Validate logs a validate call's outcome, never the phrase itself.
func (l *Logger) Validate(valid bool) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info("validate", zap.Bool("valid", valid))
}

// errorCategory collapses an error down to a short, secret-free label
// suitable for logs.
func errorCategory(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
