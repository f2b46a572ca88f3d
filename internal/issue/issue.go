// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

// Id identifies a known issue with a canned help text.
type Id int

const (
	TestCommandNotFoundId Id = iota + 1
	PreloadLibraryNotFoundId
	ConfigLoadFailedId
)

// Issue is a known failure mode with a markdown help text that walks the
// user through fixing it.
type Issue struct {
	id    Id
	mdMsg string
}

// Lookup returns the issue for the given id, or nil when unknown.
func Lookup(id Id) *Issue {
	return issues[id]
}

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw markdown help text.
func (i *Issue) MarkdownMsg() string {
	return i.mdMsg
}

// Render renders the issue's markdown help text for terminal display.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.mdMsg, stylePath)
}

// render is swappable in tests.
var render = glamour.Render

var issues = map[Id]*Issue{
	TestCommandNotFoundId: {
		id: TestCommandNotFoundId,
		mdMsg: `
# Test command not found

The test executable for the matrix run does not exist or is not executable.

## Things you can try
- Build the test program first:
~~~
$ make build
~~~
- Point the harness at the right binary:
~~~
$ secretmock matrix --command ./path/to/test
~~~
- Or set ` + "`harness.command`" + ` in your config file.`,
	},

	PreloadLibraryNotFoundId: {
		id: PreloadLibraryNotFoundId,
		mdMsg: `
# Mock library not found

The mocked libsecret shared library to preload does not exist, so the
test program would link against the real libsecret.

## Things you can try
- Build the mock library:
~~~
$ make build/libsecret.so
~~~
- Point the harness at the right library:
~~~
$ secretmock matrix --preload ./path/to/libsecret.so
~~~
- Or set ` + "`harness.preload`" + ` in your config file.`,
	},

	ConfigLoadFailedId: {
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The config file exists but could not be read or parsed.

## Things you can try
- Check the file for TOML syntax errors.
- Regenerate a known-good config:
~~~
$ secretmock config init --force
~~~`,
	},
}
