// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"secretmock-cli/internal/harness"
	"secretmock-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	matrixCommand   string
	matrixPreload   string
	matrixPasswords []string
	matrixEnvVars   []string
	matrixEnvFiles  []string
	matrixVirtual   bool
	matrixDryRun    bool

	matrixCmd = &cobra.Command{
		Use:   "matrix",
		Short: "Run the test program across the full mock configuration matrix",
		Long: `Run the test program once for every combination of password lookup
value (including one trial with no override), clear return code, and
store return code, with the mocked libsecret library preloaded.

The run stops at the first trial whose exit code is non-zero.`,
		RunE: runMatrix,
	}
)

func init() {
	matrixCmd.Flags().StringVar(&matrixCommand, "command", "", "test executable to invoke per trial (default from config)")
	matrixCmd.Flags().StringVar(&matrixPreload, "preload", "", "mock shared library to install via LD_PRELOAD (default from config)")
	matrixCmd.Flags().StringArrayVar(&matrixPasswords, "password", nil, "password axis value (repeatable, default from config)")
	matrixCmd.Flags().StringArrayVar(&matrixEnvVars, "env-var", nil, "extra KEY=VALUE override applied to every trial (repeatable)")
	matrixCmd.Flags().StringArrayVar(&matrixEnvFiles, "env-file", nil, "dotenv file with extra overrides applied to every trial (repeatable)")
	matrixCmd.Flags().BoolVar(&matrixVirtual, "virtual", false, "run the command through the embedded shell interpreter")
	matrixCmd.Flags().BoolVar(&matrixDryRun, "dry-run", false, "print the trial configurations without invoking anything")
}

func runMatrix(c *cobra.Command, _ []string) error {
	command := matrixCommand
	if command == "" {
		command = cfg.Harness.Command
	}
	preload := matrixPreload
	if preload == "" {
		preload = cfg.Harness.Preload
	}
	passwords := matrixPasswords
	if passwords == nil {
		passwords = cfg.Harness.Passwords
	}

	matrix := harness.Matrix{
		Passwords:    passwords,
		ClearRetvals: harness.DefaultRetvals,
		StoreRetvals: harness.DefaultRetvals,
	}

	if matrixDryRun {
		printTrials(c, matrix, command, preload)
		return nil
	}

	extra, err := collectExtraEnv(matrixEnvFiles, matrixEnvVars)
	if err != nil {
		return err
	}

	runner, err := buildRunner(c, command)
	if err != nil {
		return err
	}

	if err := checkPreload(c, preload); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "matrix",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	driver := &harness.Driver{
		Matrix: matrix,
		Runner: runner,
		Env: &harness.EnvBuilder{
			Preload: preload,
			Extra:   extra,
		},
		Logger: logger,
	}

	if err := driver.Run(c.Context()); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	trials := len(matrix.Trials())
	fmt.Fprintln(c.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("All %d trials passed", trials)))
	return nil
}

// buildRunner picks the native or virtual runner and verifies the
// command is actually runnable before the first trial starts.
func buildRunner(c *cobra.Command, command string) (harness.Runner, error) {
	if matrixVirtual {
		runner := harness.NewVirtualRunner(command)
		runner.Stdout = c.OutOrStdout()
		runner.Stderr = c.ErrOrStderr()
		if err := runner.Validate(); err != nil {
			return nil, err
		}
		return runner, nil
	}

	if _, err := exec.LookPath(command); err != nil {
		renderIssue(c, issue.TestCommandNotFoundId)
		return nil, issue.NewErrorContext().
			WithOperation("locate test command").
			WithResource(command).
			WithSuggestion("Build the test program or pass --command").
			Wrap(err).
			BuildError()
	}

	runner := harness.NewExecRunner(command)
	runner.Stdout = c.OutOrStdout()
	runner.Stderr = c.ErrOrStderr()
	return runner, nil
}

// checkPreload verifies the mock library file exists. Running the matrix
// without it would silently test against the real libsecret.
func checkPreload(c *cobra.Command, preload string) error {
	if _, err := os.Stat(preload); err != nil {
		renderIssue(c, issue.PreloadLibraryNotFoundId)
		return issue.NewErrorContext().
			WithOperation("locate mock library").
			WithResource(preload).
			WithSuggestion("Build the mock library or pass --preload").
			Wrap(err).
			BuildError()
	}
	return nil
}

// collectExtraEnv merges --env-file files (in flag order) and --env-var
// pairs (highest priority) into a single override map.
func collectExtraEnv(files, vars []string) (map[string]string, error) {
	extra := make(map[string]string)
	for _, path := range files {
		if err := harness.LoadEnvFile(extra, path); err != nil {
			return nil, err
		}
	}
	for _, pair := range vars {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --env-var %q (expected KEY=VALUE)", pair)
		}
		extra[key] = value
	}
	return extra, nil
}

func printTrials(c *cobra.Command, matrix harness.Matrix, command, preload string) {
	out := c.OutOrStdout()
	fmt.Fprintln(out, SubtitleStyle.Render("command: ")+CmdStyle.Render(command))
	fmt.Fprintln(out, SubtitleStyle.Render("preload: ")+CmdStyle.Render(preload))
	for i, tr := range matrix.Trials() {
		password := "(no override)"
		if tr.Password.Present {
			password = tr.Password.Value
		}
		fmt.Fprintf(out, "%2d  password=%-14s clear_retval=%s store_retval=%s\n",
			i+1, password, tr.ClearRetval, tr.StoreRetval)
	}
}

func renderIssue(c *cobra.Command, id issue.Id) {
	known := issue.Lookup(id)
	if known == nil {
		return
	}
	rendered, err := known.Render("auto")
	if err != nil {
		return
	}
	fmt.Fprint(c.ErrOrStderr(), rendered)
}
