package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/xdg.mod/xdg"
	"github.com/pelletier/go-toml"
)

const (
	configDirName      = "gtime"
	configFileName     = "config.toml"
	configKeyTimezones = "timezones"
)

var errConfigFile = errors.New("bad configuration file")

// fileConfig describes the contents of the configuration file
type fileConfig struct {
	Timezones []string `toml:"timezones"`
}

// dfltConfigFile returns the name of the configuration file used if none is
// given as a parameter
func dfltConfigFile() string {
	return filepath.Join(xdg.ConfigHome(), configDirName, configFileName)
}

// configFilePath returns the name of the configuration file to read and
// whether it must exist. A file named by parameter must exist, the default
// file need not.
func (prog *prog) configFilePath() (string, bool) {
	if prog.configFile != "" {
		return prog.configFile, true
	}

	return dfltConfigFile(), false
}

// readConfigFile reads the timezones from the configuration file. If the
// file does not exist and mustExist is false then no timezones and no
// error are returned. Entries are trimmed and empty entries are dropped.
func readConfigFile(path string, mustExist bool) ([]string, error) {
	if mustExist {
		if err := filecheck.FileExists().StatusCheck(path); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfigFile, err)
		}
	}

	content, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", errConfigFile, err)
	}

	var cfg fileConfig

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errConfigFile, path, err)
	}

	return cleanZoneList(cfg.Timezones), nil
}
