package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvLedgerFile = "TALLY_LEDGER_FILE"
	EnvCurrency   = "TALLY_CURRENCY"
	EnvLoadPolicy = "TALLY_LOAD_POLICY"
	EnvVerbose    = "TALLY_VERBOSE"
)

// extensionPrefix is the prefix of the external binaries run as subcommands.
const extensionPrefix = "et-"

// RunExtension attempts to find and execute an external et-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := extensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug().Str("extension", name).Err(err).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+*ledgerFile,
		EnvCurrency+"="+*currency,
		EnvLoadPolicy+"="+*loadPolicy,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
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
