// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"secretmock-cli/internal/issue"
	"secretmock-cli/internal/svg"

	"github.com/spf13/cobra"
)

var (
	recolorColor   string
	recolorDestDir string

	recolorCmd = &cobra.Command{
		Use:   "recolor [flags] <svg>...",
		Short: "Change the fill color of SVG files",
		Long: `Rewrite the fill color of one or more SVG files by wrapping their
inner content in a colored group element. Each result is written to the
destination directory under the source file's base name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRecolor,
	}
)

func init() {
	recolorCmd.Flags().StringVarP(&recolorColor, "new-color", "c", svg.DefaultColor, "hex code for the new color")
	recolorCmd.Flags().StringVarP(&recolorDestDir, "dest-dir", "d", "", "destination directory for the resulting svgs (default is the working directory)")
}

func runRecolor(c *cobra.Command, args []string) error {
	destDir := recolorDestDir
	if destDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return issue.WrapWithOperation(err, "resolve working directory")
		}
		destDir = cwd
	}

	for _, path := range args {
		if err := svg.RecolorFile(path, destDir, recolorColor); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintln(c.OutOrStdout(), SubtitleStyle.Render("recolored ")+CmdStyle.Render(path))
		}
	}
	return nil
}
