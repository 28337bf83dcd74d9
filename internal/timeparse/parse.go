package timeparse

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nickwells/english.mod/english"
)

const (
	nowKeyword = "now"

	iso8601Layout  = "2006-01-02T15:04:05-07:00"
	humanLayout    = "2006-01-02 15:04:05"
	timeOnlyLayout = "15:04"
	timeSecsLayout = "15:04:05"

	// the range of timestamps is the range of the proleptic Gregorian
	// calendar dates commonly supported by date libraries, years -262143
	// to 262142
	minTimestamp = -8334601315200 // -262143-01-01T00:00:00Z
	maxTimestamp = 8210266876799  // 262142-12-31T23:59:59Z
)

var (
	// ErrTimeFormat is returned (wrapped) when a string matches none of
	// the accepted forms
	ErrTimeFormat = errors.New("invalid time format")
	// ErrTimestampRange is returned (wrapped) when a string is an integer
	// but too large or too small to be shown as a time
	ErrTimestampRange = errors.New("invalid timestamp")
	// ErrNonexistentLocalTime is returned (wrapped) when a time of day does
	// not occur today in the local timezone because the clocks skip over it
	ErrNonexistentLocalTime = errors.New("nonexistent local time")
)

// Parsed holds the result of parsing a time string
type Parsed struct {
	// Echo is the string as the user gave it or "now"
	Echo string
	// Instant is the parsed time, always in UTC
	Instant time.Time
	// Format records the form which the string matched
	Format Format
}

// rule is one step in the cascade of forms tried by a Parser. If the
// string doesn't have the form, match returns false; an error is only
// returned when the string has the form but the value is bad.
type rule struct {
	format   Format
	desc     string
	examples []string
	match    func(p *Parser, s string) (time.Time, bool, error)
}

// cascade holds the forms in the order they are tried. The order matters:
// a string with a numeric offset is valid RFC 3339 as well as ISO 8601 and
// a string of digits must be taken as a timestamp before anything else
// tries it.
var cascade = []rule{
	{
		format:   Now,
		desc:     "'" + nowKeyword + "'",
		examples: []string{nowKeyword},
		match:    (*Parser).matchNow,
	},
	{
		format:   RFC3339,
		desc:     "RFC3339",
		examples: []string{"2024-01-01T12:00:00Z"},
		match:    (*Parser).matchRFC3339,
	},
	{
		format:   ISO8601,
		desc:     "ISO8601",
		examples: []string{"2024-01-01T12:00:00+00:00"},
		match:    (*Parser).matchISO8601,
	},
	{
		format:   Timestamp,
		desc:     "a Unix timestamp",
		examples: []string{"1704110400"},
		match:    (*Parser).matchTimestamp,
	},
	{
		format:   HumanReadable,
		desc:     "a date and time string",
		examples: []string{"2024-01-01 12:00:00"},
		match:    (*Parser).matchHumanReadable,
	},
	{
		format:   TimeOnly,
		desc:     "a time only",
		examples: []string{"15:30", "15:30:45"},
		match:    (*Parser).matchTimeOnly,
	},
}

// Parser converts time strings into instants. The zero value is not
// usable, create one with New.
type Parser struct {
	clock Clock
	loc   *time.Location
}

// Option is the type of a function which can be passed to New to change
// the Parser
type Option func(p *Parser) error

// SetClock returns an Option which will set the source of the current time
func SetClock(c Clock) Option {
	return func(p *Parser) error {
		if c == nil {
			return errors.New("the clock must not be nil")
		}

		p.clock = c

		return nil
	}
}

// SetLocation returns an Option which will set the timezone in which a
// bare time of day is interpreted
func SetLocation(loc *time.Location) Option {
	return func(p *Parser) error {
		if loc == nil {
			return errors.New("the location must not be nil")
		}

		p.loc = loc

		return nil
	}
}

// New returns a Parser using the system clock and the local timezone,
// changed by any options given
func New(opts ...Option) (*Parser, error) {
	p := &Parser{
		clock: SystemClock{},
		loc:   time.Local,
	}

	for _, o := range opts {
		if err := o(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// NewOrPanic calls New and panics if it returns an error
func NewOrPanic(opts ...Option) *Parser {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Parse parses the time string using a Parser with the system clock and
// the local timezone
func Parse(s string) (Parsed, error) {
	return NewOrPanic().Parse(s)
}

// Parse tries each of the accepted forms in turn and returns the result
// from the first which matches. The Echo field holds the string exactly as
// given except for the "now" form where it is always "now".
func (p *Parser) Parse(s string) (Parsed, error) {
	for _, r := range cascade {
		t, ok, err := r.match(p, s)
		if err != nil {
			return Parsed{}, err
		}

		if !ok {
			continue
		}

		echo := s
		if r.format == Now {
			echo = nowKeyword
		}

		return Parsed{Echo: echo, Instant: t.UTC(), Format: r.format}, nil
	}

	return Parsed{}, fmt.Errorf("%w %q. Expected: %s",
		ErrTimeFormat, s, expectedForms())
}

// expectedForms returns a description of every accepted form with an
// example of each
func expectedForms() string {
	forms := make([]string, 0, len(cascade))
	for _, r := range cascade {
		if r.format == Now {
			forms = append(forms, r.desc)
			continue
		}

		forms = append(forms,
			r.desc+" (e.g. '"+strings.Join(r.examples, "' or '")+"')")
	}

	return english.Join(forms, ", ", " or ")
}

// matchNow matches the word "now" in any case
func (p *Parser) matchNow(s string) (time.Time, bool, error) {
	if !strings.EqualFold(s, nowKeyword) {
		return time.Time{}, false, nil
	}

	return p.clock.Now(), true, nil
}

// matchRFC3339 matches an RFC 3339 time given in UTC with the 'Z'
// designator. Times with a numeric offset are left for the ISO 8601 form.
// As RFC 3339 allows, the 'T' and 'Z' may be in lower case and the date and
// time may be separated by a space.
func (p *Parser) matchRFC3339(s string) (time.Time, bool, error) {
	if !strings.HasSuffix(s, "Z") && !strings.HasSuffix(s, "z") {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(time.RFC3339, normaliseRFC3339(s))
	if err != nil {
		return time.Time{}, false, nil
	}

	return t, true, nil
}

// normaliseRFC3339 returns the string with the letters in upper case and
// a space between the date and time replaced by a 'T'
func normaliseRFC3339(s string) string {
	b := []byte(strings.ToUpper(s))
	if len(b) > len(time.DateOnly) && b[len(time.DateOnly)] == ' ' {
		b[len(time.DateOnly)] = 'T'
	}

	return string(b)
}

// hasFraction returns true if the string has a fractional part. The time
// package accepts fractional seconds even when the layout has none.
func hasFraction(s string) bool {
	return strings.ContainsAny(s, ".,")
}

// matchISO8601 matches a date and time with a numeric UTC offset and whole
// seconds
func (p *Parser) matchISO8601(s string) (time.Time, bool, error) {
	if hasFraction(s) {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(iso8601Layout, s)
	if err != nil {
		return time.Time{}, false, nil
	}

	return t, true, nil
}

// matchTimestamp matches a string of decimal digits, optionally signed,
// taken as seconds since the Unix epoch
func (p *Parser) matchTimestamp(s string) (time.Time, bool, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return time.Time{}, true,
				fmt.Errorf("%w: %s is too big to be held as a timestamp",
					ErrTimestampRange, s)
		}

		return time.Time{}, false, nil
	}

	if n < minTimestamp || n > maxTimestamp {
		return time.Time{}, true,
			fmt.Errorf("%w: %d is outside the range %d to %d",
				ErrTimestampRange, n, minTimestamp, maxTimestamp)
	}

	return time.Unix(n, 0), true, nil
}

// matchHumanReadable matches a date and time separated by a space. The
// time is taken to be in UTC. The seconds must be whole.
func (p *Parser) matchHumanReadable(s string) (time.Time, bool, error) {
	if hasFraction(s) {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(humanLayout, s)
	if err != nil {
		return time.Time{}, false, nil
	}

	return t, true, nil
}

// matchTimeOnly matches a time of day with or without seconds. The date is
// today's date in the Parser's timezone.
func (p *Parser) matchTimeOnly(s string) (time.Time, bool, error) {
	if hasFraction(s) {
		return time.Time{}, false, nil
	}

	var (
		tod time.Time
		err error
	)

	for _, layout := range []string{timeOnlyLayout, timeSecsLayout} {
		tod, err = time.Parse(layout, s)
		if err == nil {
			break
		}
	}

	if err != nil {
		return time.Time{}, false, nil
	}

	today := p.clock.Now().In(p.loc)
	wall := time.Date(today.Year(), today.Month(), today.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)

	t, err := resolveWallClock(wall, p.loc)
	if err != nil {
		return time.Time{}, true, err
	}

	return t, true, nil
}

// resolveWallClock finds the instant at which the clocks in loc show the
// date and time held (as UTC) in wall. If the clocks skip over that time an
// error is returned. If they show it twice the earlier instant is used.
func resolveWallClock(wall time.Time, loc *time.Location) (time.Time, error) {
	offsets := map[int]bool{}

	for _, shift := range []time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, offset := wall.Add(shift).In(loc).Zone()
		offsets[offset] = true
	}

	var instants []time.Time

	for offset := range offsets {
		t := wall.Add(-time.Duration(offset) * time.Second)
		if _, actual := t.In(loc).Zone(); actual == offset {
			instants = append(instants, t)
		}
	}

	if len(instants) == 0 {
		return time.Time{}, fmt.Errorf(
			"%w: %s does not occur on %s in %s",
			ErrNonexistentLocalTime,
			wall.Format(timeSecsLayout), wall.Format(time.DateOnly), loc)
	}

	sort.Slice(instants, func(i, j int) bool {
		return instants[i].Before(instants[j])
	})

	return instants[0], nil
}
