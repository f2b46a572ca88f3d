// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"secretmock-cli/internal/config"
	"secretmock-cli/internal/issue"

	"github.com/spf13/cobra"
)

var (
	configInitForce bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect and scaffold secretmock configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE:  runConfigInit,
	}
)

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(c *cobra.Command, _ []string) error {
	path, err := config.ResolvedPath()
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(c.OutOrStdout(), SubtitleStyle.Render("no config file found, showing built-in defaults"))
	} else {
		fmt.Fprintln(c.OutOrStdout(), SubtitleStyle.Render("config file: ")+CmdStyle.Render(path))
	}

	out, err := config.MarshalTOML(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(c.OutOrStdout(), string(out))
	return nil
}

func runConfigInit(c *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		cfgDir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return issue.NewErrorContext().
			WithOperation("initialize configuration").
			WithResource(path).
			WithSuggestion("Pass --force to overwrite the existing file").
			Wrap(fmt.Errorf("config file already exists")).
			BuildError()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return issue.WrapWithOperation(err, "create config directory")
	}

	out, err := config.DefaultTOML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return issue.WrapWithOperation(err, "write config file")
	}

	fmt.Fprintln(c.OutOrStdout(), SuccessStyle.Render("Wrote ")+CmdStyle.Render(path))
	return nil
}
