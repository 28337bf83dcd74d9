package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v7"
	"github.com/nickwells/verbose.mod/verbose"
)

const envVarTimezones = "GTIME_TIMEZONES"

var errNoTimezones = errors.New("no timezone specified")

// tzSource records where the list of timezones came from
type tzSource int

const (
	tzSrcNone tzSource = iota
	tzSrcParam
	tzSrcEnv
	tzSrcConfig
)

// String returns a description of the timezone source
func (s tzSource) String() string {
	switch s {
	case tzSrcParam:
		return "the -" + paramNameTimezone + " parameter"
	case tzSrcEnv:
		return "the " + envVarTimezones + " environment variable"
	case tzSrcConfig:
		return "the configuration file"
	}

	return "nowhere"
}

// envConfig describes the environment variables that gtime reads
type envConfig struct {
	Timezones []string `env:"GTIME_TIMEZONES" envSeparator:","`
}

// envTimezones returns the timezones from the GTIME_TIMEZONES environment
// variable. Each entry is trimmed of surrounding white space and empty
// entries are dropped.
func (prog *prog) envTimezones() ([]string, error) {
	var cfg envConfig

	err := env.Parse(&cfg, env.Options{Environment: prog.environ})
	if err != nil {
		return nil, fmt.Errorf("cannot read the %s environment variable: %w",
			envVarTimezones, err)
	}

	return cleanZoneList(cfg.Timezones), nil
}

// cleanZoneList trims the names and removes any which are then empty
func cleanZoneList(names []string) []string {
	var zones []string

	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		zones = append(zones, n)
	}

	return zones
}

// resolveTimezones returns the timezones to show and where they came
// from. The parameters take precedence over the environment which takes
// precedence over the configuration file. A source only counts if it gives
// at least one timezone.
func (prog *prog) resolveTimezones() ([]string, tzSource, error) {
	defer prog.dbgStack.Start("resolveTimezones", "finding the timezones")()
	intro := prog.dbgStack.Tag()

	if len(prog.zones) > 0 {
		return prog.zones, tzSrcParam, nil
	}

	verbose.Println(intro, " no timezone parameters, trying ", envVarTimezones)

	zones, err := prog.envTimezones()
	if err != nil {
		return nil, tzSrcNone, err
	}

	if len(zones) > 0 {
		return zones, tzSrcEnv, nil
	}

	path, mustExist := prog.configFilePath()

	verbose.Println(intro, " no timezones in the environment, trying ", path)

	zones, err = readConfigFile(path, mustExist)
	if err != nil {
		return nil, tzSrcNone, err
	}

	if len(zones) > 0 {
		return zones, tzSrcConfig, nil
	}

	return nil, tzSrcNone, fmt.Errorf(
		"%w. Use -%s (or -%s) to give one or more timezones,"+
			" set the %s environment variable"+
			" (a comma-separated list of timezones)"+
			" or list them as %q in the configuration file: %s",
		errNoTimezones,
		paramNameTimezone, paramAltNameTimezone,
		envVarTimezones,
		configKeyTimezones, path)
}
