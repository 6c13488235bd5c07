// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/lichead/lichead/cmd/lichead"

func main() {
	cmd.Execute()
}
