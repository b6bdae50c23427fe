package element_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dshills/snowui/element"
)

func TestTextClockNow(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC))

	tc := element.TextClock{Clock: mock}
	if got := tc.Now(); got != "09:26:53" {
		t.Errorf("Now() = %q, want %q", got, "09:26:53")
	}

	tc.Format = "15:04"
	if got := tc.Now(); got != "09:26" {
		t.Errorf("Now() with layout = %q, want %q", got, "09:26")
	}

	mock.Add(90 * time.Second)
	if got := tc.Now(); got != "09:28" {
		t.Errorf("Now() after advance = %q, want %q", got, "09:28")
	}
}

func TestTextClockWallClockFallback(t *testing.T) {
	var tc element.TextClock
	got := tc.Now()
	if ok, _ := regexp.MatchString(`^\d{2}:\d{2}:\d{2}$`, got); !ok {
		t.Errorf("zero TextClock Now() = %q, want HH:MM:SS", got)
	}
}
