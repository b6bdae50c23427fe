package bus

import "log/slog"

// defaultPendingWarn is the receiver backlog size that triggers a slow
// consumer warning.
const defaultPendingWarn = 1024

// Option configures a Bus.
type Option func(*busConfig)

// busConfig contains configuration for the bus.
type busConfig struct {
	// pendingWarn is the receiver backlog threshold for the slow-consumer
	// warning. Zero or negative disables the warning.
	pendingWarn int

	// logger receives bus diagnostics.
	logger *slog.Logger
}

// WithPendingWarn sets the receiver backlog threshold that triggers a slow
// consumer warning. A value <= 0 disables the warning.
func WithPendingWarn(n int) Option {
	return func(c *busConfig) {
		c.pendingWarn = n
	}
}

// WithLogger sets the logger used for bus diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *busConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
