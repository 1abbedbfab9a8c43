package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/fxdash/config"
	"github.com/rs/zerolog/log"
)

// Environment of the fxd-<name> extensions.
const (
	EnvConfigFile = "FXD_CONFIG_FILE"
	EnvPrefsFile  = "FXD_PREFS_FILE"
)

// Known reports whether name is a built-in subcommand.
func Known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}

// RunExtension attempts to find and execute an external fxd-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The global flags and the verbosity are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "fxd-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvConfigFile+"="+*configPath,
		EnvPrefsFile+"="+PreferencesPath(),
		config.EnvVerbose+"="+strconv.FormatBool(*verbose || config.Verbose()),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
