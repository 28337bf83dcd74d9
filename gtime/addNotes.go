package main

import (
	"strings"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/tzutil/gtime/internal/timeparse"
)

const (
	noteTimeForms       = "gtime - time forms"
	noteTimezoneSources = "gtime - timezone sources"
	noteExitStatus      = "gtime - exit status"
)

// timeFormsText returns a description of each of the forms that the time
// can take
func timeFormsText() string {
	var b strings.Builder

	for i, f := range timeparse.Formats() {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString("- " + timeparse.Description(f))

		if f == timeparse.Now {
			continue
		}

		b.WriteString(", for instance: '" +
			english.Join(timeparse.Examples(f), "', '", "' or '") + "'")
	}

	return b.String()
}

// addNotes adds the notes to the usage message
func addNotes(ps *param.PSet) error {
	ps.AddNote(noteTimeForms,
		"The time is given at the end of the parameters, following '"+
			ps.TerminalParam()+"'. A time containing a space must be"+
			" quoted. It is tried against each of these"+
			" forms in turn and the first that matches is used:"+
			"\n\n"+
			timeFormsText()+
			"\n\n"+
			"A date and time separated by a space is taken to be UTC."+
			" A time of day is taken to be today in the local"+
			" timezone. If the clocks skip over that time today it is"+
			" an error; if it happens twice the earlier is used."+
			"\n\n"+
			"The time is shown with a 'T' between the date and time if"+
			" it was given as RFC3339 or ISO8601 and with a space"+
			" otherwise.")

	ps.AddNote(noteTimezoneSources,
		"The timezones are taken from the first of these which"+
			" gives any:"+
			"\n\n"+
			"- the -"+paramNameTimezone+" parameters"+
			"\n"+
			"- the "+envVarTimezones+" environment variable, a comma"+
			" separated list"+
			"\n"+
			"- the '"+configKeyTimezones+"' list in the configuration"+
			" file"+
			"\n\n"+
			"If none of these gives a timezone it is an error. A"+
			" timezone that cannot be found is reported and the"+
			" others are still shown.",
		param.NoteSeeParam(paramNameTimezone, paramNameConfigFile))

	ps.AddNote(noteExitStatus,
		"The program exits with a status of:"+
			"\n\n"+
			"0 if the time was shown in at least one timezone"+
			"\n"+
			"1 if the time could not be understood"+
			"\n"+
			"2 if no timezones were given or the configuration file"+
			" is bad"+
			"\n"+
			"3 if none of the timezones could be found")

	return nil
}
