package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
	"github.com/tzutil/gtime/internal/timeparse"
)

const runTestSubDir = "run"

var gfc = testhelper.GoldenFileCfg{
	DirNames:               []string{testDataDir, runTestSubDir},
	Sfx:                    "txt",
	UpdFlagName:            "upd-run-files",
	KeepBadResultsFlagName: "keep-bad-run-results",
}

func init() {
	gfc.AddUpdateFlag()
	gfc.AddKeepBadResultsFlag()
}

// setTestParser gives the prog a parser with a fixed clock and local
// timezone
func setTestParser(t *testing.T, prog *prog) {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal("cannot load the test location:", err)
	}

	now := time.Date(2024, time.June, 15, 10, 20, 30, 0, time.UTC)
	prog.parser = timeparse.NewOrPanic(
		timeparse.SetClock(timeparse.FixedClock(now)),
		timeparse.SetLocation(loc))
}

// runTestProg runs the prog and returns the exit status and the output
func runTestProg(t *testing.T, prog *prog) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	prog.setWriters(&stdout, &stderr)
	setTestParser(t, prog)

	status := prog.run()

	return status, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		zones     []string
		environ   map[string]string
		timeArgs  []string
		showSrc   bool
		listNames bool
		tzNames   []string
		expStatus int
	}{
		{
			ID:        testhelper.MkID("partial"),
			zones:     []string{"UTC", "Bad/Zone", "Asia/Tokyo"},
			timeArgs:  []string{"1704110400"},
			expStatus: exitStatusOK,
		},
		{
			ID:        testhelper.MkID("all-bad"),
			zones:     []string{"Bad/One", "Local", "Bad/Two"},
			timeArgs:  []string{"NOW"},
			expStatus: exitStatusAllZonesBad,
		},
		{
			ID: testhelper.MkID("rfc3339"),
			zones: []string{
				"America/New_York",
				"Asia/Kolkata",
				"Asia/Kathmandu",
			},
			timeArgs:  []string{"2024-07-01T12:00:00Z"},
			expStatus: exitStatusOK,
		},
		{
			ID:        testhelper.MkID("iso8601"),
			zones:     []string{"UTC", "Europe/Berlin"},
			timeArgs:  []string{"2024-01-01T12:00:00+02:00"},
			expStatus: exitStatusOK,
		},
		{
			ID:        testhelper.MkID("now"),
			zones:     []string{"Australia/Adelaide", "America/St_Johns"},
			timeArgs:  []string{"now"},
			expStatus: exitStatusOK,
		},
		{
			ID:        testhelper.MkID("time-only"),
			zones:     []string{"UTC", "America/New_York"},
			timeArgs:  []string{"15:30"},
			expStatus: exitStatusOK,
		},
		{
			ID: testhelper.MkID("show-source"),
			environ: map[string]string{
				envVarTimezones: "Europe/London",
			},
			timeArgs:  []string{"2024-01-01 12:00:00"},
			showSrc:   true,
			expStatus: exitStatusOK,
		},
		{
			ID:        testhelper.MkID("list-names"),
			listNames: true,
			tzNames:   []string{"Europe/London", "UTC"},
			expStatus: exitStatusOK,
		},
	}

	for _, tc := range testCases {
		prog := mkTestProg(tc.zones, tc.environ, configTestFile("empty.toml"))
		prog.timeArgs = tc.timeArgs
		prog.showTZSource = tc.showSrc
		prog.listTZNames = tc.listNames

		if tc.tzNames != nil {
			prog.tzNames = tc.tzNames
		}

		status, stdout, stderr := runTestProg(t, prog)

		testhelper.DiffInt(t, tc.IDStr(), "exit status", status, tc.expStatus)
		gfc.Check(t, tc.IDStr()+" [stdout]", tc.Name+"-stdout", []byte(stdout))
		gfc.Check(t, tc.IDStr()+" [stderr]", tc.Name+"-stderr", []byte(stderr))
	}
}

func TestRunFatal(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		zones     []string
		cfg       string
		timeArgs  []string
		expStatus int
		expErrStr string
	}{
		{
			ID:        testhelper.MkID("bad time"),
			zones:     []string{"UTC"},
			timeArgs:  []string{"not a time"},
			expStatus: exitStatusBadTime,
			expErrStr: timeparse.ErrTimeFormat.Error(),
		},
		{
			ID:        testhelper.MkID("timestamp out of range"),
			zones:     []string{"UTC"},
			timeArgs:  []string{"9000000000000"},
			expStatus: exitStatusBadTime,
			expErrStr: timeparse.ErrTimestampRange.Error(),
		},
		{
			ID:        testhelper.MkID("no time"),
			zones:     []string{"UTC"},
			expStatus: exitStatusBadTime,
			expErrStr: "no time has been given",
		},
		{
			ID:        testhelper.MkID("two times"),
			zones:     []string{"UTC"},
			timeArgs:  []string{"now", "15:30"},
			expStatus: exitStatusBadTime,
			expErrStr: "2 times have been given",
		},
		{
			ID:        testhelper.MkID("no timezones"),
			cfg:       configTestFile("empty.toml"),
			timeArgs:  []string{"now"},
			expStatus: exitStatusNoTimezones,
			expErrStr: errNoTimezones.Error(),
		},
		{
			ID:        testhelper.MkID("no timezones and a bad time"),
			cfg:       configTestFile("empty.toml"),
			timeArgs:  []string{"not a time"},
			expStatus: exitStatusNoTimezones,
			expErrStr: errNoTimezones.Error(),
		},
		{
			ID:        testhelper.MkID("bad config file"),
			cfg:       configTestFile("bad.toml"),
			timeArgs:  []string{"now"},
			expStatus: exitStatusNoTimezones,
			expErrStr: errConfigFile.Error(),
		},
	}

	for _, tc := range testCases {
		prog := mkTestProg(tc.zones, nil, tc.cfg)
		prog.timeArgs = tc.timeArgs

		status, stdout, stderr := runTestProg(t, prog)

		testhelper.DiffInt(t, tc.IDStr(), "exit status", status, tc.expStatus)
		testhelper.DiffString(t, tc.IDStr(), "stdout", stdout, "")

		if !strings.HasPrefix(stderr, "Error: ") {
			t.Log(tc.IDStr())
			t.Errorf("\t: stderr should start with 'Error: ', got: %q\n",
				stderr)
		}

		flatErr := strings.Join(strings.Fields(stderr), " ")
		if !strings.Contains(flatErr, tc.expErrStr) {
			t.Log(tc.IDStr())
			t.Errorf("\t: stderr should contain %q, got: %q\n",
				tc.expErrStr, stderr)
		}
	}
}
