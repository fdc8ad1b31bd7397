package arctext

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent = slog.New(slog.DiscardHandler)
	logger atomic.Pointer[slog.Logger]
)

// SetLogger installs the logger used by arctext and its sub-packages.
// Layout diagnostics go out at Debug; absorbed degeneracies such as a
// flat fallback, an orphan combining mark or a missing font go out at
// Warn. A nil logger restores the silent default.
//
//	arctext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the installed logger. It never returns nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
