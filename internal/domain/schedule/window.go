package schedule

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

var ErrInvalidWindow = errors.New("invalid schedule window")

const clockLayout = "15:04"

// Window is a daily local time-of-day range with both bounds inclusive.
// A start after the end wraps past midnight.
type Window struct {
	start time.Duration
	end   time.Duration
}

func NewWindow(start, end string) (Window, error) {
	s, err := parseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return Window{}, err
	}
	if s == e {
		return Window{}, fmt.Errorf("%w: start equals end (%s)", ErrInvalidWindow, start)
	}
	return Window{start: s, end: e}, nil
}

func MustWindow(start, end string) Window {
	w, err := NewWindow(start, end)
	if err != nil {
		panic(err)
	}
	return w
}

// Contains reports whether local's wall-clock time falls in the window.
func (w Window) Contains(local time.Time) bool {
	tod := timeOfDay(local)
	if w.start <= w.end {
		return tod >= w.start && tod <= w.end
	}
	return tod >= w.start || tod <= w.end
}

func (w Window) String() string {
	return formatClock(w.start) + "-" + formatClock(w.end)
}

// LocalDate is the calendar date of t as seen in loc.
func LocalDate(t time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(t.In(loc))
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidWindow, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}
