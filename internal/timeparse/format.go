package timeparse

// Format records which of the accepted forms a time string matched
type Format int

const (
	Timestamp Format = iota
	Now
	RFC3339
	ISO8601
	HumanReadable
	TimeOnly
)

var formatNames = map[Format]string{
	Timestamp:     "Timestamp",
	Now:           "Now",
	RFC3339:       "RFC3339",
	ISO8601:       "ISO8601",
	HumanReadable: "HumanReadable",
	TimeOnly:      "TimeOnly",
}

// String returns the name of the format
func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}

	return "Unknown"
}

// IsDateTimeT returns true if a time given in this format should be shown
// with a 'T' between the date and the time
func (f Format) IsDateTimeT() bool {
	return f == RFC3339 || f == ISO8601
}

// Formats returns the formats in the order in which a Parser tries them
func Formats() []Format {
	fs := make([]Format, 0, len(cascade))
	for _, r := range cascade {
		fs = append(fs, r.format)
	}

	return fs
}

// Examples returns examples of time strings in the given format
func Examples(f Format) []string {
	for _, r := range cascade {
		if r.format == f {
			return r.examples
		}
	}

	return nil
}

// Description returns a short description of the format
func Description(f Format) string {
	for _, r := range cascade {
		if r.format == f {
			return r.desc
		}
	}

	return "an unknown format"
}
