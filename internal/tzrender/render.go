package tzrender

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tzutil/gtime/internal/timeparse"
	"golang.org/x/sync/errgroup"
)

const (
	layoutT     = "2006-01-02T15:04:05"
	layoutSpace = "2006-01-02 15:04:05"

	dfltMaxParallel = 8
)

// ErrUnknownZone is matched (by errors.Is) by the error returned when a
// timezone cannot be found
var ErrUnknownZone = errors.New("unknown timezone")

// ZoneError records a timezone name which could not be found and the
// reason why
type ZoneError struct {
	Zone string
	Err  error
}

// Error returns the error message
func (e *ZoneError) Error() string {
	return fmt.Sprintf("Invalid timezone '%s': %v", e.Zone, e.Err)
}

// Unwrap returns the underlying lookup error
func (e *ZoneError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is ErrUnknownZone
func (e *ZoneError) Is(target error) bool {
	return target == ErrUnknownZone
}

// Line is the rendered time for one timezone
type Line struct {
	// Zone is the timezone name exactly as it was requested
	Zone string
	// Body is the local time with the abbreviation and offset
	Body string
}

// String returns the line as it should be shown
func (l Line) String() string {
	return l.Zone + ": " + l.Body
}

// Result holds either the Line for a timezone or the reason it could not
// be rendered
type Result struct {
	Line Line
	Err  error
}

// Renderer shows instants as times in named timezones
type Renderer struct {
	locator     Locator
	maxParallel int
}

// New returns a Renderer which will find timezones with the given
// Locator. If the Locator is nil the IANA timezone database is used.
func New(l Locator) *Renderer {
	if l == nil {
		l = IANALocator{}
	}

	return &Renderer{
		locator:     l,
		maxParallel: dfltMaxParallel,
	}
}

// Render shows the instant as the time in the named timezone. The layout
// depends on the format in which the time was given. If the timezone
// cannot be found a *ZoneError is returned.
func (r *Renderer) Render(instant time.Time, zone string, f timeparse.Format,
) (Line, error) {
	loc, err := r.locator.Load(zone)
	if err != nil {
		return Line{}, &ZoneError{Zone: zone, Err: err}
	}

	return Line{Zone: zone, Body: Body(instant.In(loc), f)}, nil
}

// RenderAll renders the instant in each of the timezones. The work is
// spread over several goroutines but the results are in the same order as
// the zones.
func (r *Renderer) RenderAll(instant time.Time, zones []string,
	f timeparse.Format,
) []Result {
	results := make([]Result, len(zones))

	var g errgroup.Group

	g.SetLimit(r.maxParallel)

	for i, z := range zones {
		g.Go(func() error {
			l, err := r.Render(instant, z, f)
			results[i] = Result{Line: l, Err: err}

			return nil
		})
	}

	_ = g.Wait() // the funcs never return an error

	return results
}

// Body returns the local time (the time should already be in the target
// timezone) followed by the zone abbreviation and the UTC offset
func Body(local time.Time, f timeparse.Format) string {
	layout := layoutSpace
	if f.IsDateTimeT() {
		layout = layoutT
	}

	body := local.Format(layout)
	abbrev, offset := local.Zone()

	switch {
	case abbrev == "":
		return body + " (" + FormatOffset(offset) + ")"
	case isOffsetAbbrev(abbrev):
		return body + " " + abbrev
	}

	return body + " " + abbrev + " (" + FormatOffset(offset) + ")"
}

// FormatOffset returns the offset (in seconds east of UTC) in the form
// ±HH:MM. Any seconds are dropped.
func FormatOffset(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	mins := offset / 60

	return fmt.Sprintf("%c%02d:%02d", sign, mins/60, mins%60)
}

// isOffsetAbbrev returns true if the abbreviation is just an offset such
// as "+09" or "-0330" rather than a name
func isOffsetAbbrev(abbrev string) bool {
	return strings.Trim(abbrev, "0123456789+-") == ""
}
