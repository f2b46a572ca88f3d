// SPDX-License-Identifier: MPL-2.0

package svg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultColor is the fill color applied when none is given.
const DefaultColor = "#ffffff"

// SetFillColor wraps the inner content of an SVG document in a group
// element carrying the given fill color. The color is prefixed with '#'
// when missing. Everything between the end of the first tag and the
// start of the last tag is treated as inner content, so nested fill
// attributes closer to the leaves still win.
func SetFillColor(contents, color string) (string, error) {
	if color == "" {
		return "", fmt.Errorf("empty color code")
	}
	if color[0] != '#' {
		color = "#" + color
	}

	afterFirstCloseTag := strings.Index(contents, ">") + 1
	if afterFirstCloseTag == 0 {
		return "", fmt.Errorf("no opening tag found")
	}
	lastOpenTag := strings.LastIndex(contents, "<")
	if lastOpenTag < afterFirstCloseTag {
		return "", fmt.Errorf("no closing tag found")
	}

	var b strings.Builder
	b.Grow(len(contents) + len(color) + 32)
	b.WriteString(contents[:afterFirstCloseTag])
	b.WriteString("\n<g fill=\"")
	b.WriteString(color)
	b.WriteString("\">\n")
	b.WriteString(contents[afterFirstCloseTag:lastOpenTag])
	b.WriteString("\n</g></svg>")
	return b.String(), nil
}

// RecolorFile reads an SVG file, applies SetFillColor, and writes the
// result to destDir under the source file's base name. The source file
// is never modified in place unless destDir is its own directory.
func RecolorFile(src, destDir, color string) error {
	contents, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read '%s': %w", src, err)
	}

	recolored, err := SetFillColor(string(contents), color)
	if err != nil {
		return fmt.Errorf("failed to recolor '%s': %w", src, err)
	}

	dest := filepath.Join(destDir, filepath.Base(src))
	if err := os.WriteFile(dest, []byte(recolored), 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", dest, err)
	}
	return nil
}
