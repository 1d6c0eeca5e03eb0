// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stopwatch measures and reports elapsed wall-clock time.
package stopwatch

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// NotStarted is reported by a Stopwatch that was never started.
const NotStarted = "start time not set, call Start first"

// A Stopwatch records a start time. The zero value is a stopwatch
// that has not been started.
//
// Stopwatches are values; independent stopwatches may be used from
// different goroutines.
type Stopwatch struct {
	clock clock.Clock
	start time.Time
}

// Start returns a stopwatch started at the current time.
func Start() Stopwatch {
	return StartClock(clock.New())
}

// StartClock returns a stopwatch started at c's current time.
func StartClock(c clock.Clock) Stopwatch {
	return Stopwatch{clock: c, start: c.Now()}
}

// Started reports whether s was returned by Start or StartClock.
func (s Stopwatch) Started() bool {
	return s.clock != nil
}

// Elapsed returns the time since s was started, or 0 if s was never
// started.
func (s Stopwatch) Elapsed() time.Duration {
	if !s.Started() {
		return 0
	}
	return s.clock.Now().Sub(s.start)
}

// String reports the elapsed time in seconds, minutes, or hours,
// whichever is the smallest unit that keeps the value at most 60.
func (s Stopwatch) String() string {
	if !s.Started() {
		return NotStarted
	}
	return Format(s.Elapsed())
}

// Format formats d the way Stopwatch.String does.
func Format(d time.Duration) string {
	switch secs := d.Seconds(); {
	case secs <= 60:
		return fmt.Sprintf("Elapsed time is %.3f seconds.", secs)
	case secs <= 3600:
		return fmt.Sprintf("Elapsed time is %.2f minutes.", d.Minutes())
	default:
		return fmt.Sprintf("Elapsed time is %.2f hours.", d.Hours())
	}
}
