package main

import (
	"strings"

	"github.com/nickwells/param.mod/v6/param"
)

// example is a usage example: the environment setting (if any), the
// arguments and a description of what it does
type example struct {
	env  string
	args []string
	desc string
}

// cmd returns the command line for the example
func (e example) cmd() string {
	parts := make([]string, 0, len(e.args)+2)
	if e.env != "" {
		parts = append(parts, e.env)
	}

	parts = append(parts, "gtime")

	for _, a := range e.args {
		if strings.ContainsAny(a, " \t") {
			a = `"` + a + `"`
		}

		parts = append(parts, a)
	}

	return strings.Join(parts, " ")
}

var examples = []example{
	{
		args: []string{"-z", "Europe/London", "-z", "Asia/Tokyo", "--", "now"},
		desc: "This will show the current time in London and in Tokyo",
	},
	{
		args: []string{"-z", "America/New_York", "--", "1704110400"},
		desc: "This will show the Unix timestamp as the time in New York." +
			"\n\n" +
			"It will print:" +
			"\n\n" +
			"America/New_York: 2024-01-01 07:00:00 EST (-05:00)",
	},
	{
		args: []string{"-z", "UTC", "--", "-86400"},
		desc: "This will show a negative timestamp, the day before the" +
			" Unix epoch",
	},
	{
		args: []string{"-z", "Asia/Kolkata", "--", "2024-01-01 12:00:00"},
		desc: "This will show a UTC date and time as the time in India." +
			" The time must be quoted as it contains a space",
	},
	{
		env:  envVarTimezones + `="Asia/Kolkata, Australia/Adelaide"`,
		args: []string{"--", "2024-01-01T12:00:00Z"},
		desc: "This will show the time in India and in South Australia," +
			" the timezones being taken from the environment",
	},
	{
		args: []string{"--", "15:30"},
		desc: "This will show 15:30 today in the local timezone as the time" +
			" in each of the timezones in the configuration file",
	},
}

// addExamples adds examples to the usage message
func addExamples(ps *param.PSet) error {
	for _, e := range examples {
		ps.AddExample(e.cmd(), e.desc)
	}

	return nil
}
