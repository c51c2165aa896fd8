package webvtt

import "fmt"

// Time is a WebVTT timestamp broken into components. Values produced by
// this package are always normalized: Minutes and Seconds are in [0,59]
// and Milliseconds is in [0,999]. Hours has no upper bound.
type Time struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// Presentation returns the timestamp as a total count of milliseconds.
func (t Time) Presentation() int64 {
	h := int64(t.Hours) * 3600 * 1000
	m := int64(t.Minutes) * 60 * 1000
	s := int64(t.Seconds) * 1000
	return h + m + s + int64(t.Milliseconds)
}

// TimeFromPresentation converts a millisecond count back into a
// normalized Time. A negative count yields the zero time.
func TimeFromPresentation(d int64) Time {
	if d < 0 {
		return Time{}
	}

	var t Time
	t.Seconds = int(d / 1000)
	t.Milliseconds = int(d - int64(t.Seconds)*1000)

	t.Minutes = t.Seconds / 60
	t.Seconds -= t.Minutes * 60

	t.Hours = t.Minutes / 60
	t.Minutes -= t.Hours * 60

	return t
}

// Add returns the time shifted by ms milliseconds. Shifting below zero
// clamps to the zero time.
func (t Time) Add(ms int64) Time {
	return TimeFromPresentation(t.Presentation() + ms)
}

// Diff returns t minus o in milliseconds.
func (t Time) Diff(o Time) int64 {
	return t.Presentation() - o.Presentation()
}

// Before reports whether t is earlier than o.
func (t Time) Before(o Time) bool {
	return t.Presentation() < o.Presentation()
}

// After reports whether t is later than o.
func (t Time) After(o Time) bool {
	return t.Presentation() > o.Presentation()
}

// String renders the timestamp as HH:MM:SS.mmm.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}
