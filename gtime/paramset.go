package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// paramOptFuncs returns the parameter option functions (which add the
// various parameters to the paramset). This is separated out from the
// paramset creation so that it can be used in testing to create several
// distinct paramsets.
func paramOptFuncs(prog *prog) []param.PSetOptFunc {
	return []param.PSetOptFunc{
		verbose.AddParams,
		verbose.AddTimingParams(prog.dbgStack),

		versionparams.AddParams,

		addParams(prog),

		addNotes,
		addExamples,

		param.SetProgramDescription(
			"This will show the given time in each of a list of" +
				" timezones. The time is given after the parameters" +
				" and can be a Unix timestamp, 'now', a date and time or" +
				" just a time of day." +
				"\n\n" +
				"The timezones can be given as parameters, in the " +
				envVarTimezones + " environment variable or in a" +
				" configuration file." +
				"\n\n" +
				"Each line of output gives the timezone name and the" +
				" time there together with the timezone abbreviation" +
				" and the offset from UTC."),
	}
}

// makeParamSet creates the parameter set ready for argument parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(paramOptFuncs(prog)...)
}
