package skeleton

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger sets the logger used by the package.
// A nil logger restores the default, which discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
