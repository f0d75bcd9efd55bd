package collide2d

import "log/slog"

// logger receives the soft-warning diagnostics GJK and EPA emit when they
// cross their iteration warn threshold (SPEC_FULL §7, §10.A). It defaults
// to slog.Default() so the core works unconfigured, and can be overridden
// by an embedding engine that wants these routed into its own sink.
var logger = slog.Default()

// SetLogger overrides the logger used for GJK/EPA non-convergence
// diagnostics. Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.Default()
		return
	}
	logger = l
}
