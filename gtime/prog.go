package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/tzutil/gtime/internal/timeparse"
	"github.com/tzutil/gtime/internal/tzrender"
)

// Created: Sat Mar 16 10:42:07 2024

const (
	exitStatusOK = iota
	exitStatusBadTime
	exitStatusNoTimezones
	exitStatusAllZonesBad
)

// prog holds program parameters and status
type prog struct {
	zones        []string
	configFile   string
	listTZNames  bool
	showTZSource bool

	timeArgs []string

	// environ, if not nil, is used instead of the process environment
	environ map[string]string

	parser   *timeparse.Parser
	renderer *tzrender.Renderer

	tzNames []string

	stdout io.Writer
	stderr io.Writer
	errTWC *twrap.TWConf

	dbgStack *verbose.Stack
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	prog := &prog{
		parser:   timeparse.NewOrPanic(),
		renderer: tzrender.New(nil),
		tzNames:  tempus.TimezoneNames(),
		dbgStack: &verbose.Stack{},
	}
	prog.setWriters(os.Stdout, os.Stderr)

	return prog
}

// setWriters sets the destinations for the normal output and for the
// error messages
func (prog *prog) setWriters(stdout, stderr io.Writer) {
	prog.stdout = stdout
	prog.stderr = stderr
	prog.errTWC = twrap.NewTWConfOrPanic(twrap.SetWriter(stderr))
}

// listTimezoneNames displays the Timezone names
func (prog *prog) listTimezoneNames() {
	for _, n := range prog.tzNames {
		fmt.Fprintln(prog.stdout, n)
	}
}

// reportFatal prints the error message, wrapped to fit the terminal, on
// the standard error
func (prog *prog) reportFatal(err error) {
	prog.errTWC.Wrap("Error: "+err.Error(), 0)
}

// timeArg returns the single time string given on the command line
func (prog *prog) timeArg() (string, error) {
	switch len(prog.timeArgs) {
	case 0:
		return "", fmt.Errorf("no time has been given. %s", timeArgHint)
	case 1:
		return prog.timeArgs[0], nil
	}

	return "",
		fmt.Errorf("%d times have been given (%q), only one is allowed. %s",
			len(prog.timeArgs), prog.timeArgs, timeArgHint)
}

// run converts the time into each of the timezones and prints the results.
// It returns the exit status for the program.
func (prog *prog) run() int {
	defer prog.dbgStack.Start("run", "converting the time")()
	intro := prog.dbgStack.Tag()

	if prog.listTZNames {
		prog.listTimezoneNames()
		return exitStatusOK
	}

	zones, src, err := prog.resolveTimezones()
	if err != nil {
		prog.reportFatal(err)
		return exitStatusNoTimezones
	}

	if prog.showTZSource {
		fmt.Fprintf(prog.stderr, "Timezones from: %s\n", src)
	}

	verbose.Println(intro, " timezones from: ", src.String())

	ts, err := prog.timeArg()
	if err != nil {
		prog.reportFatal(err)
		return exitStatusBadTime
	}

	p, err := prog.parser.Parse(ts)
	if err != nil {
		prog.reportFatal(err)
		return exitStatusBadTime
	}

	verbose.Println(intro, " time format: ", p.Format.String())

	fmt.Fprintln(prog.stdout, "Input time:", p.Echo)
	fmt.Fprintln(prog.stdout)

	goodCount := 0

	for _, r := range prog.renderer.RenderAll(p.Instant, zones, p.Format) {
		if r.Err != nil {
			fmt.Fprintln(prog.stderr, "Error:", r.Err)
			continue
		}

		goodCount++

		fmt.Fprintln(prog.stdout, r.Line.String())
	}

	if goodCount == 0 {
		return exitStatusAllZonesBad
	}

	return exitStatusOK
}
