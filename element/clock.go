package element

import "github.com/benbjohnson/clock"

// defaultClockLayout renders wall time as hours, minutes and seconds.
const defaultClockLayout = "15:04:05"

// TextClock is a text leaf showing the current time.
type TextClock struct {
	// Format is a Go reference-time layout. Empty means "15:04:05".
	Format string

	// Clock supplies the time source. Nil means the wall clock; tests
	// inject a mock.
	Clock clock.Clock
}

// Layout returns the effective reference-time layout.
func (t TextClock) Layout() string {
	if t.Format == "" {
		return defaultClockLayout
	}
	return t.Format
}

// Now renders the current time with the clock's layout.
func (t TextClock) Now() string {
	c := t.Clock
	if c == nil {
		c = clock.New()
	}
	return c.Now().Format(t.Layout())
}

func (TextClock) isObject() {}

// IntoObject returns the clock itself.
func (t TextClock) IntoObject() Object { return t }
