package element

import (
	"context"
	"time"
)

// ClickHandler is implemented by elements that react to clicks.
type ClickHandler interface {
	OnClick() error
}

// UpdateContext carries timing information into Update.
type UpdateContext struct {
	Time time.Time
}

// Updater is implemented by elements that advance on every frame.
type Updater interface {
	Update(uctx *UpdateContext)
}

// Ticker is implemented by elements that run a periodic background loop.
// RunTicker blocks until ctx is done.
type Ticker interface {
	RunTicker(ctx context.Context)
}
