package bus

import (
	"sync"

	"github.com/dshills/snowui/internal/config"
)

var (
	defaultMu  sync.Mutex
	defaultBus *Bus
)

// Default returns the process-wide bus, creating it on first use with
// settings from the framework configuration. All element finalization and
// the snowui façade route through this instance.
func Default() *Bus {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultBus == nil {
		defaultBus = New(WithPendingWarn(config.Get().Bus.PendingWarn))
	}
	return defaultBus
}

// SetDefault replaces the process-wide bus and returns the previous one
// (nil if none existed yet). Tests use it to install a fresh bus.
func SetDefault(b *Bus) *Bus {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultBus
	defaultBus = b
	return prev
}
