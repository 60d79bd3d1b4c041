// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// dateutil.go
// The placeholder table is reused from: https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"strconv"
	"strings"
	"time"
)

/*
	Formats (spreadsheet style):

	MMMM/MMM/MM/M - month (January/Jan/01/1)
	DDDD/DDD/DD/D - day (Monday/Mon/02/2)
	YYYY/YY       - year (2006/06)
	hh mm ss      - 24h hours, minutes, seconds
	h ... pm      - 12h hours with AM/PM
	ZZZZ/ZZZ/ZZ   - zone (-0700/MST/Z07:00)
*/

type p struct{ find, subst string }

var Placeholder = []p{
	{"hh", "15"},
	{"h", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"pm", "PM"},
	{"ZZZZ", "-0700"},
	{"ZZZ", "MST"},
	{"ZZ", "Z07:00"},
	{"YYYY", "2006"},
	{"YY", "06"},
	{"DDDD", "Monday"},
	{"DDD", "Mon"},
	{"DD", "02"},
	{"D", "2"},
}

var (
	DefaultTimeFormat     = "hh:mm:ss"
	DefaultDateTimeFormat = "DDDD, DD MMM YYYY hh:mm:ss"
)

// Translate converts a spreadsheet style format to a Go time layout.
func Translate(format string) string {
	out := format
	for _, ph := range Placeholder {
		out = strings.ReplaceAll(out, ph.find, ph.subst)
	}
	return out
}

// Format formats date with a spreadsheet style format, DefaultDateTimeFormat if empty.
func Format(format string, date time.Time) string {
	if format == "" {
		format = DefaultDateTimeFormat
	}
	return date.Format(Translate(format))
}

func FormatDateTime(date time.Time) string {
	return Format(DefaultDateTimeFormat, date)
}

// Stopwatch measures one operation for the menu's timing lines.
type Stopwatch struct {
	start time.Time
	end   time.Time
	now   func() time.Time
}

func StartStopwatch() *Stopwatch {
	return startStopwatchWith(time.Now)
}

func startStopwatchWith(now func() time.Time) *Stopwatch {
	return &Stopwatch{start: now(), now: now}
}

// Stop freezes the elapsed time. Elapsed keeps running until Stop is called.
func (s *Stopwatch) Stop() *Stopwatch {
	s.end = s.now()
	return s
}

func (s *Stopwatch) Elapsed() time.Duration {
	if !s.end.IsZero() {
		return s.end.Sub(s.start)
	}
	return s.now().Sub(s.start)
}

// Ticks reports elapsed microseconds, the resolution the timing lines use
// for a clock tick.
func (s *Stopwatch) Ticks() int64 {
	return s.Elapsed().Microseconds()
}

// timingLines renders a stopwatch reading as clock ticks and seconds.
func timingLines(s *Stopwatch) []string {
	return []string{
		"time: " + strconv.FormatInt(s.Ticks(), 10) + " clock ticks",
		"time: " + strconv.FormatFloat(s.Elapsed().Seconds(), 'f', -1, 64) + " seconds",
	}
}
