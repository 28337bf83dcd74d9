package main

import (
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramNameTimezone           = "timezone"
	paramAltNameTimezone        = "z"
	paramNameConfigFile         = "config-file"
	paramNameListTimezoneNames  = "list-timezone-names"
	paramNameShowTimezoneSource = "show-timezone-source"

	groupNameTimezone = param.DfltGroupName + "-timezone"

	timeArgName = "time"
	timeArgHint = "Give the time to convert at the end of the" +
		" parameters, following '--'"
)

// HandleRemainder records the trailing arguments. These should be the
// single time string to be converted.
func (prog *prog) HandleRemainder(ps *param.PSet, _ *location.L) {
	prog.timeArgs = append(prog.timeArgs, ps.Remainder()...)
}

// addParams adds the parameters for this program
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameTimezone, "timezone parameters\n\n"+
			"These allow you to choose the timezones in which to"+
			" show the time.")

		ps.Add(paramNameTimezone,
			psetter.StrListAppender[string]{
				Value: &prog.zones,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"a timezone in which to show the time. This may be given"+
				" several times and the time is shown in each timezone"+
				" in the order given."+
				"\n\n"+
				"If any are given then the "+envVarTimezones+
				" environment variable and the configuration file"+
				" are not used.",
			param.AltNames(paramAltNameTimezone, "tz"),
			param.GroupName(groupNameTimezone),
		)

		ps.Add(paramNameConfigFile,
			psetter.Pathname{
				Value:       &prog.configFile,
				Expectation: filecheck.FileExists(),
			},
			"the configuration file from which to read the timezones."+
				" It is only read if no timezones have been given"+
				" as parameters or in the "+envVarTimezones+
				" environment variable."+
				"\n\n"+
				"If this is not given the default file is used"+
				" but it need not exist. The default is:"+
				"\n"+dfltConfigFile(),
			param.AltNames("config"),
			param.GroupName(groupNameTimezone),
		)

		ps.Add(paramNameListTimezoneNames,
			psetter.Bool{Value: &prog.listTZNames},
			"list the timezone names and exit",
			param.AltNames("list-tz-names"),
			param.GroupName(groupNameTimezone),
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
		)

		ps.Add(paramNameShowTimezoneSource,
			psetter.Bool{Value: &prog.showTZSource},
			"report on the standard error where the timezones came from",
			param.AltNames("show-tz-source"),
			param.GroupName(groupNameTimezone),
		)

		return ps.SetNamedRemHandler(prog, timeArgName)
	}
}
