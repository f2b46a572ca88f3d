// SPDX-License-Identifier: MPL-2.0

package main

import cmd "secretmock-cli/cmd/secretmock"

func main() {
	cmd.Execute()
}
